package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"navrail-cli/internal/format"
	"navrail-cli/internal/model"
	"navrail-cli/internal/mutate"
	"navrail-cli/internal/store"
	"navrail-cli/internal/tui"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "navrail",
		Short:        "Sidebar module configuration for the PDM desktop client",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  navrail

  # Scriptable commands
  navrail show
  navrail modules disable notifications
  navrail move webhooks --before extensions
  navrail groups add "CAD Tools" --icon plug
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("NAVRAIL_DIR", ""), "Path to store dir (advanced: overrides workspace discovery; mainly for fixtures/tests)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("NAVRAIL_FORMAT", "json"), "Output format (json|text)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newModulesCmd(app))
	cmd.AddCommand(newGroupsCmd(app))
	cmd.AddCommand(newDividersCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newTUICmd(app))
	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (a *App) storeDir() (string, error) {
	if strings.TrimSpace(a.Dir) != "" {
		return strings.TrimSpace(a.Dir), nil
	}
	return store.DefaultDir()
}

func (a *App) openStore() (store.Store, error) {
	dir, err := a.storeDir()
	if err != nil {
		return store.Store{}, err
	}
	return store.Store{Dir: dir}, nil
}

// loadConfig loads (and, when the on-disk blob is stale against the catalog,
// repairs and persists) the workspace configuration.
func (a *App) loadConfig(st store.Store) (*model.ModuleConfig, error) {
	cfg, reconciled, err := st.Load()
	if err != nil {
		return nil, err
	}
	if reconciled {
		if err := st.Save(cfg); err != nil {
			return nil, err
		}
		if err := st.AppendEvent("config.reconcile", "config", nil); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applyResult persists a mutation outcome and appends its event. No-ops
// (Changed=false) write nothing.
func (a *App) applyResult(st store.Store, res mutate.Result) error {
	if !res.Changed {
		return nil
	}
	if err := st.Save(res.Config); err != nil {
		return err
	}
	entity := res.ID
	if entity == "" {
		entity = "config"
	}
	return st.AppendEvent(res.Event, entity, res.Payload)
}

func (a *App) write(cmd *cobra.Command, v any) error {
	return format.Write(cmd.OutOrStdout(), v, a.Format, a.PrettyJSON)
}

func runTUI(app *App) error {
	st, err := app.openStore()
	if err != nil {
		return err
	}
	cfg, err := app.loadConfig(st)
	if err != nil {
		return err
	}
	return tui.Run(st, cfg)
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive sidebar editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}
