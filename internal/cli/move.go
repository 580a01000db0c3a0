package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"navrail-cli/internal/model"
	"navrail-cli/internal/mutate"
	"navrail-cli/internal/reorder"
	"navrail-cli/internal/sidebar"
)

func newMoveCmd(app *App) *cobra.Command {
	var before, after string
	var toStart, toEnd bool
	cmd := &cobra.Command{
		Use:   "move <item-id>",
		Short: "Move a module, divider, or group in the sidebar order",
		Long: strings.TrimSpace(`
Move a row of the combined sidebar list. Groups travel with every module
currently nested under them; nesting itself is unchanged by moves.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig(st)
			if err != nil {
				return err
			}

			list := sidebar.BuildCombinedOrderList(cfg)
			src := indexOfItem(list, args[0])
			if src < 0 {
				return mutate.NotFoundError{Kind: "sidebar item", ID: args[0]}
			}

			var ind reorder.DropIndicator
			switch {
			case before != "":
				i := indexOfItem(list, before)
				if i < 0 {
					return mutate.NotFoundError{Kind: "sidebar item", ID: before}
				}
				ind = reorder.DropIndicator{Index: i, Position: reorder.Before}
			case after != "":
				i := indexOfItem(list, after)
				if i < 0 {
					return mutate.NotFoundError{Kind: "sidebar item", ID: after}
				}
				ind = reorder.DropIndicator{Index: i, Position: reorder.After}
			case toStart:
				ind = reorder.DropIndicator{Index: 0, Position: reorder.Before}
			case toEnd:
				ind = reorder.DropIndicator{Index: len(list) - 1, Position: reorder.After}
			default:
				return errors.New("one of --before, --after, --start, --end is required")
			}

			sess, err := reorder.Start(cfg, list, src, 0)
			if err != nil {
				return err
			}
			next, changed, err := reorder.Apply(cfg, sess, ind)
			if err != nil {
				return err
			}
			if changed {
				if err := st.Save(next); err != nil {
					return err
				}
				if err := st.AppendEvent("sidebar.move", args[0], map[string]any{
					"item": args[0], "index": ind.Index, "position": string(ind.Position),
				}); err != nil {
					return err
				}
			}
			return app.write(cmd, changedOutput{Changed: changed, ID: args[0]})
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "Place the item before this item id")
	cmd.Flags().StringVar(&after, "after", "", "Place the item after this item id")
	cmd.Flags().BoolVar(&toStart, "start", false, "Move to the top of the sidebar")
	cmd.Flags().BoolVar(&toEnd, "end", false, "Move to the bottom of the sidebar")
	return cmd
}

func indexOfItem(list []model.OrderListItem, id string) int {
	id = strings.TrimSpace(id)
	for i, it := range list {
		if it.ID == id {
			return i
		}
	}
	return -1
}
