package store

import (
	"fmt"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

// Finding is one doctor diagnosis. Severity is "error" for invariant
// violations and "warn" for repairable staleness.
type Finding struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// Doctor audits a configuration against the engine's invariants. It never
// mutates; pair with sidebar.Reconcile / mutate ops to repair.
func Doctor(cfg *model.ModuleConfig) []Finding {
	out := []Finding{}
	if cfg == nil {
		return append(out, Finding{Severity: "error", Code: "nil-config", Detail: "no configuration loaded"})
	}

	if err := sidebar.CheckOrder(cfg); err != nil {
		// Stale order is expected across catalog upgrades; reconcile repairs it.
		out = append(out, Finding{Severity: "warn", Code: "order-mismatch", Detail: err.Error()})
	}

	seenDiv := map[string]bool{}
	for _, d := range cfg.Dividers {
		if seenDiv[d.ID] {
			out = append(out, Finding{Severity: "error", Code: "duplicate-divider", Detail: d.ID})
		}
		seenDiv[d.ID] = true
	}
	seenGrp := map[string]bool{}
	for _, g := range cfg.CustomGroups {
		if seenGrp[g.ID] {
			out = append(out, Finding{Severity: "error", Code: "duplicate-group", Detail: g.ID})
		}
		seenGrp[g.ID] = true
		if _, ok := catalog.IconGlyph(g.Icon); !ok {
			out = append(out, Finding{Severity: "error", Code: "unknown-icon", Detail: fmt.Sprintf("group %s icon %q", g.ID, g.Icon)})
		}
	}

	for id, p := range cfg.ModuleParents {
		if _, ok := catalog.FindModule(p); ok {
			continue
		}
		if _, ok := catalog.FindGroup(p); ok {
			continue
		}
		if cfg.FindCustomGroup(p) != nil {
			continue
		}
		out = append(out, Finding{Severity: "error", Code: "dangling-parent", Detail: fmt.Sprintf("module %s -> %s", id, p)})
	}

	for _, id := range cfg.ModuleOrder {
		if sidebar.DescendantSet(id, cfg)[id] {
			out = append(out, Finding{Severity: "error", Code: "parent-cycle", Detail: id})
		}
	}
	return out
}
