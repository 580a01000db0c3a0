package cli

import (
	"github.com/spf13/cobra"

	"navrail-cli/internal/model"
	"navrail-cli/internal/mutate"
)

func newDividersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dividers",
		Short: "Manage cosmetic section dividers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List dividers",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig(st)
			if err != nil {
				return err
			}
			out := cfg.Dividers
			if out == nil {
				out = []model.SectionDivider{}
			}
			return app.write(cmd, out)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Add a divider after the last module",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.AddDivider(cfg)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <divider-id>",
		Short: "Remove a divider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMutation(cmd, func(cfg *model.ModuleConfig) (mutate.Result, error) {
				return mutate.RemoveDivider(cfg, args[0])
			})
		},
	})
	return cmd
}
