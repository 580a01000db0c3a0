package mutate

import (
	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

// SetModuleEnabled flips a module's enabled flag.
//
// Rejected with ErrNotToggleable when the module is required while its group is
// enabled, or when the owning master-toggle group is off (members of a disabled
// group are force-hidden; toggling them individually would be meaningless).
func SetModuleEnabled(cfg *model.ModuleConfig, moduleID string, enabled bool) (Result, error) {
	moduleID = trim(moduleID)
	m, ok := catalog.FindModule(moduleID)
	if !ok {
		return Result{}, NotFoundError{Kind: "module", ID: moduleID}
	}
	cur := cfg != nil && cfg.EnabledModules != nil && cfg.EnabledModules[moduleID]
	if cur == enabled {
		return unchanged(cfg), nil
	}
	if !sidebar.GroupEffectivelyEnabled(m.Group, cfg) {
		return Result{}, ErrNotToggleable
	}
	if !sidebar.CanToggleModule(moduleID, cfg) {
		return Result{}, ErrNotToggleable
	}

	out := cfg.Clone()
	if out.EnabledModules == nil {
		out.EnabledModules = map[string]bool{}
	}
	out.EnabledModules[moduleID] = enabled
	return Result{
		Config:  out,
		Changed: true,
		ID:      moduleID,
		Event:   "module.set_enabled",
		Payload: map[string]any{"module": moduleID, "enabled": enabled},
	}, nil
}

// SetGroupEnabled flips a built-in group's master toggle. Groups without a
// master toggle reject the edit (there is nothing to toggle).
func SetGroupEnabled(cfg *model.ModuleConfig, groupID string, enabled bool) (Result, error) {
	groupID = trim(groupID)
	g, ok := catalog.FindGroup(groupID)
	if !ok {
		return Result{}, NotFoundError{Kind: "group", ID: groupID}
	}
	if !g.IsMasterToggle {
		return Result{}, ErrNotToggleable
	}
	cur := true
	if cfg != nil && cfg.EnabledGroups != nil {
		if v, ok := cfg.EnabledGroups[groupID]; ok {
			cur = v
		}
	}
	if cur == enabled {
		return unchanged(cfg), nil
	}
	out := cfg.Clone()
	if out.EnabledGroups == nil {
		out.EnabledGroups = map[string]bool{}
	}
	out.EnabledGroups[groupID] = enabled
	return Result{
		Config:  out,
		Changed: true,
		ID:      groupID,
		Event:   "group.set_enabled",
		Payload: map[string]any{"group": groupID, "enabled": enabled},
	}, nil
}

// SetModuleParent re-parents a module. parentID may be another module id, a
// custom group id, or empty to clear to top-level.
//
// Rejected with ErrCycle when parentID is the module itself or any of its
// descendants, and with ErrLocked for modules pinned under a system group.
func SetModuleParent(cfg *model.ModuleConfig, moduleID, parentID string) (Result, error) {
	moduleID = trim(moduleID)
	parentID = trim(parentID)
	if _, ok := catalog.FindModule(moduleID); !ok {
		return Result{}, NotFoundError{Kind: "module", ID: moduleID}
	}
	if cfg != nil && cfg.Locked(moduleID) {
		return Result{}, ErrLocked
	}

	cur, _ := cfg.ParentOf(moduleID)
	if cur == parentID {
		return unchanged(cfg), nil
	}

	if parentID != "" {
		if parentID == moduleID {
			return Result{}, ErrCycle
		}
		if !parentExists(cfg, parentID) {
			return Result{}, NotFoundError{Kind: "parent", ID: parentID}
		}
		if sidebar.DescendantSet(moduleID, cfg)[parentID] {
			return Result{}, ErrCycle
		}
	}

	out := cfg.Clone()
	if parentID == "" {
		delete(out.ModuleParents, moduleID)
	} else {
		if out.ModuleParents == nil {
			out.ModuleParents = map[string]string{}
		}
		out.ModuleParents[moduleID] = parentID
	}
	return Result{
		Config:  out,
		Changed: true,
		ID:      moduleID,
		Event:   "module.set_parent",
		Payload: map[string]any{"module": moduleID, "parent": parentID},
	}, nil
}

func parentExists(cfg *model.ModuleConfig, parentID string) bool {
	if _, ok := catalog.FindModule(parentID); ok {
		return true
	}
	if _, ok := catalog.FindGroup(parentID); ok {
		return true
	}
	return cfg.FindCustomGroup(parentID) != nil
}

// SetModuleIconColor sets or clears (color == "") a module's icon color
// override.
func SetModuleIconColor(cfg *model.ModuleConfig, moduleID, color string) (Result, error) {
	moduleID = trim(moduleID)
	color = trim(color)
	if _, ok := catalog.FindModule(moduleID); !ok {
		return Result{}, NotFoundError{Kind: "module", ID: moduleID}
	}
	cur := ""
	if cfg != nil && cfg.ModuleIconColors != nil {
		cur = cfg.ModuleIconColors[moduleID]
	}
	if cur == color {
		return unchanged(cfg), nil
	}
	out := cfg.Clone()
	if color == "" {
		delete(out.ModuleIconColors, moduleID)
	} else {
		if out.ModuleIconColors == nil {
			out.ModuleIconColors = map[string]string{}
		}
		out.ModuleIconColors[moduleID] = color
	}
	return Result{
		Config:  out,
		Changed: true,
		ID:      moduleID,
		Event:   "module.set_icon_color",
		Payload: map[string]any{"module": moduleID, "color": color},
	}, nil
}
