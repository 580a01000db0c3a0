package mutate

import (
	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
)

// AddCustomGroup creates a user group. The group lands at the end of the
// combined list (position = len(moduleOrder)) and starts enabled.
func AddCustomGroup(cfg *model.ModuleConfig, name string, icon model.IconID, iconColor string) (Result, error) {
	name = trim(name)
	if name == "" {
		return Result{}, ErrEmptyName
	}
	if _, ok := catalog.IconGlyph(icon); !ok {
		return Result{}, ErrUnknownIcon
	}

	out := cfg.Clone()
	g := model.CustomGroup{
		ID:       newID(model.CustomGroupPrefix),
		Name:     name,
		Icon:     icon,
		Enabled:  true,
		Position: len(out.ModuleOrder),
	}
	if c := trim(iconColor); c != "" {
		g.IconColor = &c
	}
	out.CustomGroups = append(out.CustomGroups, g)
	return Result{
		Config:  out,
		Changed: true,
		ID:      g.ID,
		Event:   "custom_group.add",
		Payload: map[string]any{"group": g.ID, "name": name},
	}, nil
}

// EditCustomGroup updates a group's name, icon and color override. An empty
// iconColor clears the override.
func EditCustomGroup(cfg *model.ModuleConfig, groupID, name string, icon model.IconID, iconColor string) (Result, error) {
	groupID = trim(groupID)
	name = trim(name)
	if cfg.FindCustomGroup(groupID) == nil {
		return Result{}, NotFoundError{Kind: "custom group", ID: groupID}
	}
	if name == "" {
		return Result{}, ErrEmptyName
	}
	if _, ok := catalog.IconGlyph(icon); !ok {
		return Result{}, ErrUnknownIcon
	}

	out := cfg.Clone()
	g := out.FindCustomGroup(groupID)
	color := trim(iconColor)
	same := g.Name == name && g.Icon == icon &&
		((g.IconColor == nil && color == "") || (g.IconColor != nil && *g.IconColor == color))
	if same {
		return unchanged(cfg), nil
	}
	g.Name = name
	g.Icon = icon
	if color == "" {
		g.IconColor = nil
	} else {
		g.IconColor = &color
	}
	return Result{
		Config:  out,
		Changed: true,
		ID:      groupID,
		Event:   "custom_group.edit",
		Payload: map[string]any{"group": groupID, "name": name},
	}, nil
}

// RemoveCustomGroup deletes a group and strips it as a parent from every module
// that pointed to it, so no dangling parent references survive.
func RemoveCustomGroup(cfg *model.ModuleConfig, groupID string) (Result, error) {
	groupID = trim(groupID)
	if cfg.FindCustomGroup(groupID) == nil {
		return Result{}, NotFoundError{Kind: "custom group", ID: groupID}
	}

	out := cfg.Clone()
	kept := out.CustomGroups[:0]
	for _, g := range out.CustomGroups {
		if g.ID != groupID {
			kept = append(kept, g)
		}
	}
	out.CustomGroups = kept
	for id, p := range out.ModuleParents {
		if p == groupID {
			delete(out.ModuleParents, id)
		}
	}
	return Result{
		Config:  out,
		Changed: true,
		ID:      groupID,
		Event:   "custom_group.remove",
		Payload: map[string]any{"group": groupID},
	}, nil
}

// ToggleCustomGroup flips a custom group's enabled flag.
func ToggleCustomGroup(cfg *model.ModuleConfig, groupID string, enabled bool) (Result, error) {
	groupID = trim(groupID)
	if cfg.FindCustomGroup(groupID) == nil {
		return Result{}, NotFoundError{Kind: "custom group", ID: groupID}
	}
	if cfg.FindCustomGroup(groupID).Enabled == enabled {
		return unchanged(cfg), nil
	}
	out := cfg.Clone()
	out.FindCustomGroup(groupID).Enabled = enabled
	return Result{
		Config:  out,
		Changed: true,
		ID:      groupID,
		Event:   "custom_group.toggle",
		Payload: map[string]any{"group": groupID, "enabled": enabled},
	}, nil
}
