package catalog

import "navrail-cli/internal/model"

// The compiled-in sidebar catalog for the PDM desktop client. Module and group
// definitions are immutable at runtime; user configuration only reorders,
// nests, and toggles them.

var groups = []model.ModuleGroup{
	{ID: "sys-general", Name: "General"},
	{ID: "sys-pdm", Name: "Vault", IsMasterToggle: true},
	{ID: "sys-review", Name: "Reviews", IsMasterToggle: true},
	{ID: "sys-admin", Name: "Administration", IsMasterToggle: true},
}

var modules = []model.Module{
	{ID: "dashboard", Name: "Dashboard", Icon: model.IconDashboard, Group: "sys-general", Required: true, Implemented: true},
	{ID: "notifications", Name: "Notifications", Icon: model.IconBell, Group: "sys-general", Implemented: true},
	{ID: "settings", Name: "Settings", Icon: model.IconSettings, Group: "sys-general", Required: true, Implemented: true},

	{ID: "vault-browser", Name: "Vault Browser", Icon: model.IconVault, Group: "sys-pdm", Required: true, Implemented: true},
	{ID: "checkouts", Name: "Check-Outs", Icon: model.IconCheckout, Group: "sys-pdm", Implemented: true, Dependencies: []string{"vault-browser"}},
	{ID: "checkins", Name: "Check-Ins", Icon: model.IconCheckin, Group: "sys-pdm", Implemented: true, Dependencies: []string{"checkouts"}},
	{ID: "version-history", Name: "Version History", Icon: model.IconHistory, Group: "sys-pdm", Implemented: true, Dependencies: []string{"vault-browser"}},
	{ID: "releases", Name: "Releases", Icon: model.IconRelease, Group: "sys-pdm", Dependencies: []string{"version-history"}},

	{ID: "reviews", Name: "Reviews", Icon: model.IconReview, Group: "sys-review", Required: true, Implemented: true, Dependencies: []string{"vault-browser"}},
	{ID: "review-dashboard", Name: "Review Dashboard", Icon: model.IconClipboard, Group: "sys-review", Implemented: true, Dependencies: []string{"reviews"}},
	{ID: "change-orders", Name: "Change Orders", Icon: model.IconTag, Group: "sys-review", Dependencies: []string{"reviews"}},

	{ID: "members", Name: "Members", Icon: model.IconMembers, Group: "sys-admin", Required: true, Implemented: true},
	{ID: "webhooks", Name: "Webhooks", Icon: model.IconWebhook, Group: "sys-admin", Implemented: true},
	{ID: "extensions", Name: "Extensions", Icon: model.IconExtension, Group: "sys-admin", Implemented: true},
	{ID: "branding", Name: "Branding", Icon: model.IconBranding, Group: "sys-admin", Implemented: true},
}

// Modules returns the full catalog in canonical order.
func Modules() []model.Module {
	return append([]model.Module(nil), modules...)
}

// Groups returns the built-in group definitions.
func Groups() []model.ModuleGroup {
	return append([]model.ModuleGroup(nil), groups...)
}

// ModuleIDs returns the catalog's module ids in canonical order.
func ModuleIDs() []string {
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		out = append(out, m.ID)
	}
	return out
}

// FindModule looks a module up by id.
func FindModule(id string) (model.Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return model.Module{}, false
}

// FindGroup looks a built-in group up by id.
func FindGroup(id string) (model.ModuleGroup, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return model.ModuleGroup{}, false
}

// DefaultConfig builds a fresh configuration: catalog order, implemented modules
// enabled, all groups on, no dividers/custom groups/overrides.
func DefaultConfig() *model.ModuleConfig {
	cfg := &model.ModuleConfig{
		Version:        model.SchemaVersion,
		ModuleOrder:    ModuleIDs(),
		EnabledModules: make(map[string]bool, len(modules)),
		EnabledGroups:  make(map[string]bool, len(groups)),
	}
	for _, m := range modules {
		cfg.EnabledModules[m.ID] = m.Implemented
	}
	for _, g := range groups {
		cfg.EnabledGroups[g.ID] = true
	}
	return cfg
}
