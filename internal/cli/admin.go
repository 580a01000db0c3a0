package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a .navrail workspace in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			dir := filepath.Join(cwd, ".navrail")
			if app.Dir != "" {
				dir = app.Dir
			}
			st := store.Store{Dir: dir}
			if st.Exists() {
				return fmt.Errorf("already initialized: %s", dir)
			}
			if err := st.Save(catalog.DefaultConfig()); err != nil {
				return err
			}
			return app.write(cmd, map[string]any{"dir": dir})
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the sidebar to the catalog default",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset discards all customization; re-run with --force")
			}
			st, err := app.openStore()
			if err != nil {
				return err
			}
			if err := st.Save(catalog.DefaultConfig()); err != nil {
				return err
			}
			if err := st.AppendEvent("config.reset", "config", nil); err != nil {
				return err
			}
			return app.write(cmd, changedOutput{Changed: true})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")
	return cmd
}

func newEventsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the mutation event log (oldest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			evs, err := st.ListEvents()
			if err != nil {
				return err
			}
			return app.write(cmd, evs)
		},
	}
}

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Audit the configuration against the engine invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			// Doctor inspects the raw on-disk value, so bypass reconcile-on-load.
			cfg, err := st.LoadRaw()
			if err != nil {
				return err
			}
			findings := store.Doctor(cfg)
			if err := app.write(cmd, findings); err != nil {
				return err
			}
			for _, f := range findings {
				if f.Severity == "error" {
					return fmt.Errorf("doctor found %d finding(s)", len(findings))
				}
			}
			return nil
		},
	}
}
