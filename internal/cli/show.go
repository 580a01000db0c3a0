package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

type showRow struct {
	Type    model.OrderItemType `json:"type"`
	ID      string              `json:"id"`
	Name    string              `json:"name,omitempty"`
	Enabled bool                `json:"enabled"`
	Visible bool                `json:"visible,omitempty"`
	Locked  bool                `json:"locked,omitempty"`
	Depth   int                 `json:"depth"`
}

type showOutput struct {
	Rows []showRow `json:"rows"`
}

func (o showOutput) Text() string {
	var b strings.Builder
	for _, r := range o.Rows {
		indent := strings.Repeat("  ", r.Depth)
		switch r.Type {
		case model.OrderItemDivider:
			fmt.Fprintf(&b, "%s────────\n", indent)
		default:
			mark := " "
			if r.Visible {
				mark = "*"
			}
			suffix := ""
			if r.Locked {
				suffix = " (locked)"
			}
			if !r.Enabled {
				suffix += " (off)"
			}
			fmt.Fprintf(&b, "%s[%s] %s%s\n", indent, mark, r.Name, suffix)
		}
	}
	return b.String()
}

// buildShowRows renders the combined list the way the sidebar does: nested
// modules are skipped at top level and emitted beneath their parent row.
func buildShowRows(cfg *model.ModuleConfig) []showRow {
	list := sidebar.BuildCombinedOrderList(cfg)
	rows := make([]showRow, 0, len(list))

	inList := map[string]bool{}
	for _, it := range list {
		if it.Type == model.OrderItemModule {
			inList[it.ID] = true
		}
	}
	// Only parents with their own row relocate children; system-group parents
	// (locked modules) have none, so those modules render in place.
	hasRow := func(parent string) bool {
		return inList[parent] || cfg.FindCustomGroup(parent) != nil
	}

	var emitModule func(id string, depth int)
	emitModule = func(id string, depth int) {
		m, ok := catalog.FindModule(id)
		if !ok {
			return
		}
		rows = append(rows, showRow{
			Type:    model.OrderItemModule,
			ID:      id,
			Name:    m.Name,
			Enabled: cfg.EnabledModules[id],
			Visible: sidebar.ModuleVisible(id, cfg),
			Locked:  cfg.Locked(id),
			Depth:   depth,
		})
		for _, ch := range sidebar.ChildModules(id, cfg) {
			emitModule(ch, depth+1)
		}
	}

	for _, it := range list {
		switch it.Type {
		case model.OrderItemModule:
			if p, nested := cfg.ParentOf(it.ID); nested && hasRow(p) {
				continue
			}
			emitModule(it.ID, 0)
		case model.OrderItemDivider:
			d := cfg.FindDivider(it.ID)
			rows = append(rows, showRow{
				Type:    model.OrderItemDivider,
				ID:      it.ID,
				Enabled: d != nil && d.Enabled,
			})
		case model.OrderItemGroup:
			g := cfg.FindCustomGroup(it.ID)
			if g == nil {
				continue
			}
			rows = append(rows, showRow{
				Type:    model.OrderItemGroup,
				ID:      g.ID,
				Name:    g.Name,
				Enabled: g.Enabled,
			})
			for _, ch := range sidebar.ChildModules(g.ID, cfg) {
				emitModule(ch, 1)
			}
		}
	}
	return rows
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the projected sidebar (modules, dividers, groups)",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig(st)
			if err != nil {
				return err
			}
			return app.write(cmd, showOutput{Rows: buildShowRows(cfg)})
		},
	}
}
