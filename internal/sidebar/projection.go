package sidebar

import (
	"navrail-cli/internal/model"
)

// The combined list is the flattened, ordered sequence of modules, dividers and
// custom groups the renderer (and the reorder engine) operate on.
//
// Slot conventions:
//   - a custom group with Position p renders before the module at index p
//   - a divider with Position p renders after the module at index p
//     (p == -1 means before the first module)
//
// Out-of-range positions are appended at the end rather than dropped, to avoid
// silent data loss when positions go stale.

// BuildCombinedOrderList projects a config into its render sequence. Pure and
// deterministic: identical inputs yield identical output.
func BuildCombinedOrderList(cfg *model.ModuleConfig) []model.OrderListItem {
	if cfg == nil {
		return nil
	}
	n := len(cfg.ModuleOrder)
	out := make([]model.OrderListItem, 0, n+len(cfg.Dividers)+len(cfg.CustomGroups))

	for _, d := range cfg.Dividers {
		if d.Position < 0 {
			out = append(out, model.OrderListItem{Type: model.OrderItemDivider, ID: d.ID})
		}
	}
	for i, id := range cfg.ModuleOrder {
		for _, g := range cfg.CustomGroups {
			if g.Position == i {
				out = append(out, model.OrderListItem{Type: model.OrderItemGroup, ID: g.ID})
			}
		}
		out = append(out, model.OrderListItem{Type: model.OrderItemModule, ID: id})
		for _, d := range cfg.Dividers {
			if d.Position == i {
				out = append(out, model.OrderListItem{Type: model.OrderItemDivider, ID: d.ID})
			}
		}
	}
	for _, g := range cfg.CustomGroups {
		if g.Position >= n {
			out = append(out, model.OrderListItem{Type: model.OrderItemGroup, ID: g.ID})
		}
	}
	for _, d := range cfg.Dividers {
		if d.Position >= n {
			out = append(out, model.OrderListItem{Type: model.OrderItemDivider, ID: d.ID})
		}
	}
	return out
}

// Decompose maps a combined list back onto the config's order-bearing fields:
// moduleOrder, divider positions, and custom-group positions. Enabled flags,
// names, icons, parents and color overrides are preserved by id lookup against
// prev; items whose id is unknown to prev are dropped.
func Decompose(list []model.OrderListItem, prev *model.ModuleConfig) (order []string, dividers []model.SectionDivider, groups []model.CustomGroup) {
	order = make([]string, 0, len(list))
	for _, it := range list {
		switch it.Type {
		case model.OrderItemModule:
			order = append(order, it.ID)
		case model.OrderItemDivider:
			d := prev.FindDivider(it.ID)
			if d == nil {
				continue
			}
			cp := *d
			cp.Position = len(order) - 1
			dividers = append(dividers, cp)
		case model.OrderItemGroup:
			g := prev.FindCustomGroup(it.ID)
			if g == nil {
				continue
			}
			cp := *g
			if g.IconColor != nil {
				v := *g.IconColor
				cp.IconColor = &v
			}
			cp.Position = len(order)
			groups = append(groups, cp)
		}
	}
	return order, dividers, groups
}

// ChildModules returns the module ids parented to parentID, in moduleOrder
// order. parentID may be a module id, a custom group id, or a system group id.
func ChildModules(parentID string, cfg *model.ModuleConfig) []string {
	if cfg == nil || parentID == "" {
		return nil
	}
	var out []string
	for _, id := range cfg.ModuleOrder {
		if p, ok := cfg.ParentOf(id); ok && p == parentID {
			out = append(out, id)
		}
	}
	return out
}

// DescendantSet returns every module reachable from id through ModuleParents
// (children, grandchildren, ...). id itself is not included.
func DescendantSet(id string, cfg *model.ModuleConfig) map[string]bool {
	out := map[string]bool{}
	if cfg == nil || id == "" {
		return out
	}
	var walk func(parent string)
	walk = func(parent string) {
		for _, ch := range ChildModules(parent, cfg) {
			if out[ch] {
				continue
			}
			out[ch] = true
			walk(ch)
		}
	}
	walk(id)
	return out
}
