package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/mutate"
)

func newGroupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage custom groups and built-in master toggles",
	}
	cmd.AddCommand(newGroupsListCmd(app))
	cmd.AddCommand(newGroupsAddCmd(app))
	cmd.AddCommand(newGroupsEditCmd(app))
	cmd.AddCommand(newGroupsRemoveCmd(app))
	cmd.AddCommand(newGroupsToggleCmd(app, "on", true))
	cmd.AddCommand(newGroupsToggleCmd(app, "off", false))
	return cmd
}

type groupInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Builtin        bool   `json:"builtin"`
	IsMasterToggle bool   `json:"isMasterToggle,omitempty"`
	Icon           string `json:"icon,omitempty"`
	IconColor      string `json:"iconColor,omitempty"`
	Enabled        bool   `json:"enabled"`
}

func newGroupsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in groups and custom groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig(st)
			if err != nil {
				return err
			}
			out := []groupInfo{}
			for _, g := range catalog.Groups() {
				enabled := true
				if v, ok := cfg.EnabledGroups[g.ID]; ok {
					enabled = v
				}
				out = append(out, groupInfo{
					ID:             g.ID,
					Name:           g.Name,
					Builtin:        true,
					IsMasterToggle: g.IsMasterToggle,
					Enabled:        enabled,
				})
			}
			for _, g := range cfg.CustomGroups {
				info := groupInfo{
					ID:      g.ID,
					Name:    g.Name,
					Icon:    string(g.Icon),
					Enabled: g.Enabled,
				}
				if g.IconColor != nil {
					info.IconColor = *g.IconColor
				}
				out = append(out, info)
			}
			return app.write(cmd, out)
		},
	}
}

func newGroupsAddCmd(app *App) *cobra.Command {
	var icon, color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.AddCustomGroup(cfg, args[0], model.IconID(icon), color)
			})
		},
	}
	cmd.Flags().StringVar(&icon, "icon", string(model.IconFolder), "Icon id")
	cmd.Flags().StringVar(&color, "color", "", "Icon color override")
	return cmd
}

func newGroupsEditCmd(app *App) *cobra.Command {
	var name, icon, color string
	cmd := &cobra.Command{
		Use:   "edit <group-id>",
		Short: "Edit a custom group's name, icon, or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig(st)
			if err != nil {
				return err
			}
			// Unset flags keep the current values.
			g := cfg.FindCustomGroup(strings.TrimSpace(args[0]))
			if g != nil {
				if name == "" {
					name = g.Name
				}
				if icon == "" {
					icon = string(g.Icon)
				}
				if color == "" && g.IconColor != nil && !cmd.Flags().Changed("color") {
					color = *g.IconColor
				}
			}
			res, err := mutate.EditCustomGroup(cfg, args[0], name, model.IconID(icon), color)
			if err != nil {
				return err
			}
			if err := app.applyResult(st, res); err != nil {
				return err
			}
			return app.write(cmd, changedOutput{Changed: res.Changed, ID: res.ID})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon id")
	cmd.Flags().StringVar(&color, "color", "", "New icon color (pass empty with --color '' to clear)")
	return cmd
}

func newGroupsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <group-id>",
		Short: "Delete a custom group (members move back to top level)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.RemoveCustomGroup(cfg, args[0])
			})
		},
	}
}

func newGroupsToggleCmd(app *App, verb string, enabled bool) *cobra.Command {
	short := "Enable a group"
	if !enabled {
		short = "Disable a group (master toggles hide all member modules)"
	}
	return &cobra.Command{
		Use:   verb + " <group-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				if strings.HasPrefix(strings.TrimSpace(args[0]), model.SystemGroupPrefix) {
					return mutate.SetGroupEnabled(cfg, args[0], enabled)
				}
				return mutate.ToggleCustomGroup(cfg, args[0], enabled)
			})
		},
	}
}
