package model

// SchemaVersion is the current on-disk ModuleConfig schema version. The stored
// blob had no version field historically; loaders treat a missing/zero version
// as version 1.
const SchemaVersion = 1

// Reserved id prefixes. System group ids use SystemGroupPrefix; a module parented
// under a system group is locked (not draggable, not re-parentable).
const (
	SystemGroupPrefix = "sys-"
	CustomGroupPrefix = "grp-"
	DividerPrefix     = "div-"
)

// IconID names an icon in the closed, compiled-in icon set. Unknown ids are a
// catalog bug, not a runtime fallback (see catalog.IconGlyph).
type IconID string

const (
	IconDashboard  IconID = "dashboard"
	IconVault      IconID = "vault"
	IconFolder     IconID = "folder"
	IconCheckout   IconID = "checkout"
	IconCheckin    IconID = "checkin"
	IconReview     IconID = "review"
	IconRelease    IconID = "release"
	IconWebhook    IconID = "webhook"
	IconExtension  IconID = "extension"
	IconMembers    IconID = "members"
	IconBranding   IconID = "branding"
	IconSettings   IconID = "settings"
	IconBell       IconID = "bell"
	IconClipboard  IconID = "clipboard"
	IconLayers     IconID = "layers"
	IconPlug       IconID = "plug"
	IconStar       IconID = "star"
	IconTag        IconID = "tag"
	IconHistory    IconID = "history"
	IconBox        IconID = "box"
)

// Module is a catalog-defined navigable section of the sidebar. Immutable at
// runtime; the catalog is compiled in.
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        IconID `json:"icon"`
	Group       string `json:"group"`
	Required    bool   `json:"required"`
	Implemented bool   `json:"implemented"`

	// Dependencies lists module ids that must be enabled before this module is
	// visible. Order is significant for display, not semantics.
	Dependencies []string `json:"dependencies,omitempty"`
}

// ModuleGroup is a built-in top-level category. When IsMasterToggle is set,
// disabling the group force-disables every member module regardless of the
// member's own enabled flag.
type ModuleGroup struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	IsMasterToggle bool   `json:"isMasterToggle"`
}

// CustomGroup is a user-created container node that can parent modules for
// nested display.
type CustomGroup struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      IconID  `json:"icon"`
	IconColor *string `json:"iconColor,omitempty"`
	Enabled   bool    `json:"enabled"`

	// Position is the slot in moduleOrder the group renders before. The combined
	// list is the source of truth for ordering; Position is recomputed from it
	// after every structural edit.
	Position int `json:"position"`
}

// SectionDivider is a purely cosmetic separator row. It never participates in
// enable/disable logic.
type SectionDivider struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	Enabled  bool   `json:"enabled"`
}

// ModuleConfig is the full persisted sidebar configuration, one per workspace.
type ModuleConfig struct {
	Version int `json:"version"`

	// ModuleOrder is the canonical top-level ordering of all catalog modules.
	// Nested modules keep their slot here; nesting is expressed via ModuleParents.
	ModuleOrder []string `json:"moduleOrder"`

	EnabledModules map[string]bool `json:"enabledModules"`
	EnabledGroups  map[string]bool `json:"enabledGroups"`

	Dividers     []SectionDivider `json:"dividers,omitempty"`
	CustomGroups []CustomGroup    `json:"customGroups,omitempty"`

	// ModuleParents maps module id -> parent id (module id, custom group id, or
	// system group id). Absent = top-level.
	ModuleParents map[string]string `json:"moduleParents,omitempty"`

	ModuleIconColors map[string]string `json:"moduleIconColors,omitempty"`
}

// Clone returns a deep copy. Mutation functions operate on clones so callers'
// configs are never modified in place.
func (c *ModuleConfig) Clone() *ModuleConfig {
	if c == nil {
		return nil
	}
	out := &ModuleConfig{
		Version:     c.Version,
		ModuleOrder: append([]string(nil), c.ModuleOrder...),
	}
	if c.EnabledModules != nil {
		out.EnabledModules = make(map[string]bool, len(c.EnabledModules))
		for k, v := range c.EnabledModules {
			out.EnabledModules[k] = v
		}
	}
	if c.EnabledGroups != nil {
		out.EnabledGroups = make(map[string]bool, len(c.EnabledGroups))
		for k, v := range c.EnabledGroups {
			out.EnabledGroups[k] = v
		}
	}
	if c.Dividers != nil {
		out.Dividers = append([]SectionDivider(nil), c.Dividers...)
	}
	if c.CustomGroups != nil {
		out.CustomGroups = make([]CustomGroup, len(c.CustomGroups))
		for i, g := range c.CustomGroups {
			cp := g
			if g.IconColor != nil {
				v := *g.IconColor
				cp.IconColor = &v
			}
			out.CustomGroups[i] = cp
		}
	}
	if c.ModuleParents != nil {
		out.ModuleParents = make(map[string]string, len(c.ModuleParents))
		for k, v := range c.ModuleParents {
			out.ModuleParents[k] = v
		}
	}
	if c.ModuleIconColors != nil {
		out.ModuleIconColors = make(map[string]string, len(c.ModuleIconColors))
		for k, v := range c.ModuleIconColors {
			out.ModuleIconColors[k] = v
		}
	}
	return out
}

// FindCustomGroup returns a pointer into c.CustomGroups, or nil.
func (c *ModuleConfig) FindCustomGroup(id string) *CustomGroup {
	if c == nil {
		return nil
	}
	for i := range c.CustomGroups {
		if c.CustomGroups[i].ID == id {
			return &c.CustomGroups[i]
		}
	}
	return nil
}

// FindDivider returns a pointer into c.Dividers, or nil.
func (c *ModuleConfig) FindDivider(id string) *SectionDivider {
	if c == nil {
		return nil
	}
	for i := range c.Dividers {
		if c.Dividers[i].ID == id {
			return &c.Dividers[i]
		}
	}
	return nil
}

// ParentOf reports the parent id of a module, if any.
func (c *ModuleConfig) ParentOf(moduleID string) (string, bool) {
	if c == nil || c.ModuleParents == nil {
		return "", false
	}
	p, ok := c.ModuleParents[moduleID]
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

// Locked reports whether a module is pinned under a system group and therefore
// excluded from drag/re-parent operations.
func (c *ModuleConfig) Locked(moduleID string) bool {
	p, ok := c.ParentOf(moduleID)
	if !ok {
		return false
	}
	return len(p) >= len(SystemGroupPrefix) && p[:len(SystemGroupPrefix)] == SystemGroupPrefix
}
