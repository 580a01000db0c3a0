package cli

import (
	"github.com/spf13/cobra"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/mutate"
	"navrail-cli/internal/sidebar"
)

type moduleInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Group        string   `json:"group"`
	Icon         string   `json:"icon"`
	Required     bool     `json:"required"`
	Implemented  bool     `json:"implemented"`
	Dependencies []string `json:"dependencies,omitempty"`
	Enabled      bool     `json:"enabled"`
	Visible      bool     `json:"visible"`
	CanToggle    bool     `json:"canToggle"`
	Parent       string   `json:"parent,omitempty"`
	IconColor    string   `json:"iconColor,omitempty"`
	Locked       bool     `json:"locked,omitempty"`
}

func newModulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "Inspect and toggle catalog modules",
	}
	cmd.AddCommand(newModulesListCmd(app))
	cmd.AddCommand(newModulesSetEnabledCmd(app, "enable", true))
	cmd.AddCommand(newModulesSetEnabledCmd(app, "disable", false))
	cmd.AddCommand(newModulesParentCmd(app))
	cmd.AddCommand(newModulesColorCmd(app))
	return cmd
}

func newModulesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all catalog modules with their configured state",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig(st)
			if err != nil {
				return err
			}
			out := make([]moduleInfo, 0, len(cfg.ModuleOrder))
			for _, id := range cfg.ModuleOrder {
				m, ok := catalog.FindModule(id)
				if !ok {
					continue
				}
				parent, _ := cfg.ParentOf(id)
				out = append(out, moduleInfo{
					ID:           m.ID,
					Name:         m.Name,
					Group:        m.Group,
					Icon:         string(m.Icon),
					Required:     m.Required,
					Implemented:  m.Implemented,
					Dependencies: m.Dependencies,
					Enabled:      cfg.EnabledModules[id],
					Visible:      sidebar.ModuleVisible(id, cfg),
					CanToggle:    sidebar.CanToggleModule(id, cfg),
					Parent:       parent,
					IconColor:    cfg.ModuleIconColors[id],
					Locked:       cfg.Locked(id),
				})
			}
			return app.write(cmd, out)
		},
	}
}

type changedOutput struct {
	Changed bool   `json:"changed"`
	ID      string `json:"id,omitempty"`
}

func (o changedOutput) Text() string {
	if o.Changed {
		return "ok\n"
	}
	return "no change\n"
}

func (a *App) runMutation(cmd *cobra.Command, fn func(cfg *model.ModuleConfig) (mutate.Result, error)) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	cfg, err := a.loadConfig(st)
	if err != nil {
		return err
	}
	res, err := fn(cfg)
	if err != nil {
		return err
	}
	if err := a.applyResult(st, res); err != nil {
		return err
	}
	return a.write(cmd, changedOutput{Changed: res.Changed, ID: res.ID})
}

func newModulesSetEnabledCmd(app *App, verb string, enabled bool) *cobra.Command {
	short := "Enable a module"
	if !enabled {
		short = "Disable a module (required modules need their group disabled first)"
	}
	return &cobra.Command{
		Use:   verb + " <module-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.SetModuleEnabled(cfg, args[0], enabled)
			})
		},
	}
}

func newModulesParentCmd(app *App) *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "parent <module-id> [parent-id]",
		Short: "Nest a module under another module or custom group (--clear for top-level)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := ""
			if len(args) == 2 {
				parent = args[1]
			}
			if clear {
				parent = ""
			}
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.SetModuleParent(cfg, args[0], parent)
			})
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the parent (move back to top level)")
	return cmd
}

func newModulesColorCmd(app *App) *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "color <module-id> [color]",
		Short: "Set or clear a module's icon color override",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			color := ""
			if len(args) == 2 {
				color = args[1]
			}
			if clear {
				color = ""
			}
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.SetModuleIconColor(cfg, args[0], color)
			})
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the color override")
	return cmd
}
