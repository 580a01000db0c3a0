package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's font. Instead we choose between
// Unicode and ASCII glyph sets for UI affordances (drag handles, dividers,
// locks). This helps on terminals/fonts that don't render some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NAVRAIL_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphDragHandle() string {
	if glyphs() == glyphSetASCII {
		return "::"
	}
	return "⋮⋮"
}

func glyphLock() string {
	if glyphs() == glyphSetASCII {
		return "#"
	}
	return "⌖"
}

func glyphDividerRune() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}

func glyphDropRune() string {
	if glyphs() == glyphSetASCII {
		return "="
	}
	return "━"
}

func glyphToggleOn() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "[●]"
}

func glyphToggleOff() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "[○]"
}

func glyphNestBranch() string {
	if glyphs() == glyphSetASCII {
		return "`-"
	}
	return "└─"
}
