package tui

import (
	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

// row is one rendered line of the editor. listIndex is the row's slot in the
// combined order list; nested modules render beneath their parent but keep
// their own combined-list slot for reorder purposes.
type row struct {
	item      model.OrderListItem
	listIndex int
	depth     int
}

// buildRows projects the config into render order: the combined list with
// nested modules relocated under their parent row.
func buildRows(cfg *model.ModuleConfig) []row {
	list := sidebar.BuildCombinedOrderList(cfg)
	slot := make(map[string]int, len(list))
	for i, it := range list {
		if it.Type == model.OrderItemModule {
			slot[it.ID] = i
		}
	}

	// A parent only relocates its children when it has a row of its own:
	// another module, or a custom group. System-group parents (the locked
	// case) have no row, so those modules stay in their combined-list slot.
	hasRow := func(parent string) bool {
		if _, ok := slot[parent]; ok {
			return true
		}
		return cfg.FindCustomGroup(parent) != nil
	}

	rows := make([]row, 0, len(list))
	var emitModule func(id string, depth int)
	emitModule = func(id string, depth int) {
		rows = append(rows, row{
			item:      model.OrderListItem{Type: model.OrderItemModule, ID: id},
			listIndex: slot[id],
			depth:     depth,
		})
		for _, ch := range sidebar.ChildModules(id, cfg) {
			emitModule(ch, depth+1)
		}
	}

	for i, it := range list {
		switch it.Type {
		case model.OrderItemModule:
			if p, nested := cfg.ParentOf(it.ID); nested && hasRow(p) {
				continue
			}
			emitModule(it.ID, 0)
		case model.OrderItemGroup:
			rows = append(rows, row{item: it, listIndex: i})
			for _, ch := range sidebar.ChildModules(it.ID, cfg) {
				emitModule(ch, 1)
			}
		default:
			rows = append(rows, row{item: it, listIndex: i})
		}
	}
	return rows
}

// rowForListIndex finds the rendered row holding a combined-list slot.
func rowForListIndex(rows []row, listIndex int) int {
	for i, r := range rows {
		if r.listIndex == listIndex {
			return i
		}
	}
	return -1
}
