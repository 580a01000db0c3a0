package catalog

import "navrail-cli/internal/model"

// Icon rendering is a closed table over model.IconID. Every icon named by the
// catalog must have an entry here (enforced by TestCatalogIconsHaveGlyphs);
// there is no runtime fallback icon.

type iconGlyphs struct {
	Unicode string
	ASCII   string
}

var icons = map[model.IconID]iconGlyphs{
	model.IconDashboard: {Unicode: "◩", ASCII: "#"},
	model.IconVault:     {Unicode: "🗀", ASCII: "V"},
	model.IconFolder:    {Unicode: "🗁", ASCII: "/"},
	model.IconCheckout:  {Unicode: "↧", ASCII: "v"},
	model.IconCheckin:   {Unicode: "↥", ASCII: "^"},
	model.IconReview:    {Unicode: "✓", ASCII: "R"},
	model.IconRelease:   {Unicode: "⚑", ASCII: "!"},
	model.IconWebhook:   {Unicode: "⇄", ASCII: "W"},
	model.IconExtension: {Unicode: "❖", ASCII: "X"},
	model.IconMembers:   {Unicode: "☷", ASCII: "M"},
	model.IconBranding:  {Unicode: "✎", ASCII: "B"},
	model.IconSettings:  {Unicode: "⚙", ASCII: "*"},
	model.IconBell:      {Unicode: "◉", ASCII: "N"},
	model.IconClipboard: {Unicode: "▤", ASCII: "C"},
	model.IconLayers:    {Unicode: "≡", ASCII: "="},
	model.IconPlug:      {Unicode: "⌁", ASCII: "P"},
	model.IconStar:      {Unicode: "★", ASCII: "+"},
	model.IconTag:       {Unicode: "⌘", ASCII: "T"},
	model.IconHistory:   {Unicode: "↺", ASCII: "H"},
	model.IconBox:       {Unicode: "▣", ASCII: "O"},
}

// IconGlyph resolves an icon id to its unicode glyph. ok=false means the id is
// not part of the closed set.
func IconGlyph(id model.IconID) (string, bool) {
	g, ok := icons[id]
	if !ok {
		return "", false
	}
	return g.Unicode, true
}

// IconGlyphASCII resolves an icon id to its ASCII fallback glyph.
func IconGlyphASCII(id model.IconID) (string, bool) {
	g, ok := icons[id]
	if !ok {
		return "", false
	}
	return g.ASCII, true
}

// IconIDs returns every icon id in the closed set. Order is unspecified.
func IconIDs() []model.IconID {
	out := make([]model.IconID, 0, len(icons))
	for id := range icons {
		out = append(out, id)
	}
	return out
}
