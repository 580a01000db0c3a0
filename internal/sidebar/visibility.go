package sidebar

import (
	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
)

// GroupEffectivelyEnabled reports whether a built-in group's master toggle is
// on. Groups without a master toggle are always effectively enabled; unknown
// group ids are treated as enabled (they can't gate anything).
func GroupEffectivelyEnabled(groupID string, cfg *model.ModuleConfig) bool {
	g, ok := catalog.FindGroup(groupID)
	if !ok || !g.IsMasterToggle {
		return true
	}
	if cfg == nil || cfg.EnabledGroups == nil {
		return true
	}
	v, ok := cfg.EnabledGroups[groupID]
	if !ok {
		// Missing entry defaults to enabled.
		return true
	}
	return v
}

// ModuleVisible reports whether a module shows up in the rendered sidebar:
// its own enabled flag is on, its owning master-toggle group is on, and every
// dependency is enabled.
func ModuleVisible(moduleID string, cfg *model.ModuleConfig) bool {
	m, ok := catalog.FindModule(moduleID)
	if !ok {
		return false
	}
	if cfg == nil || cfg.EnabledModules == nil || !cfg.EnabledModules[moduleID] {
		return false
	}
	if !GroupEffectivelyEnabled(m.Group, cfg) {
		return false
	}
	for _, dep := range m.Dependencies {
		if !cfg.EnabledModules[dep] {
			return false
		}
	}
	return true
}

// CanToggleModule reports whether a module's enabled flag may be flipped.
// Required modules are pinned on while their group is enabled; turning them off
// requires disabling the whole group.
func CanToggleModule(moduleID string, cfg *model.ModuleConfig) bool {
	m, ok := catalog.FindModule(moduleID)
	if !ok {
		return false
	}
	if m.Required && GroupEffectivelyEnabled(m.Group, cfg) {
		return false
	}
	return true
}
