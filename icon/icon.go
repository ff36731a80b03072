// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII or Unicode
// squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tailtheme/tailtheme/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Reload
	Palette
	Font
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "", plain: "OK", squares: "🟩"},
	Fail:    {emoji: "❌", nerd: "", plain: "FAIL", squares: "🟥"},
	Warn:    {emoji: "⚠️", nerd: "", plain: "WARN", squares: "🟨"},
	Reload:  {emoji: "🔄", nerd: "", plain: "~", squares: "🟦"},
	Palette: {emoji: "🎨", nerd: "", plain: "#", squares: "🟪"},
	Font:    {emoji: "🔤", nerd: "", plain: "Aa", squares: "⬜"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
