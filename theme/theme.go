// Package theme models the palette, typography and content-scanning record handed to the style generator.
//
// A Config is built once per build, validated against a base font-family table
// and never mutated afterwards. Every accessor returns fresh collections.
package theme

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Config is the theme record consumed by the external style generator.
type Config struct {
	// ContentGlobs lists the source files scanned for class usage.
	ContentGlobs []string
	// Colors maps a color name to a #RRGGBB value.
	Colors map[string]string
	// FontFamilies maps a family role (sans, mono, ...) to its custom entries.
	FontFamilies map[string]FontFamily
	// Plugins is an opaque ordered list of plugin identifiers.
	Plugins []string
}

// FontFamily holds the custom font names for a role and the base role whose stack is appended after them.
type FontFamily struct {
	Names []string `mapstructure:"names"`
	// Fallback names the role in the base table. Empty means the same role.
	Fallback string `mapstructure:"fallback"`
}

// FallbackRole returns the base table role used for the given family role.
func (f FontFamily) FallbackRole(role string) string {
	if f.Fallback == "" {
		return role
	}
	return f.Fallback
}

// BaseFamilies is the fallback font table supplied by the style generator, keyed by generic role.
type BaseFamilies map[string][]string

// DefaultBase returns a fresh copy of the generator's default font stacks.
func DefaultBase() BaseFamilies {
	return BaseFamilies{
		"sans": {
			"ui-sans-serif",
			"system-ui",
			"sans-serif",
			`"Apple Color Emoji"`,
			`"Segoe UI Emoji"`,
			`"Segoe UI Symbol"`,
			`"Noto Color Emoji"`,
		},
		"serif": {
			"ui-serif",
			"Georgia",
			"Cambria",
			`"Times New Roman"`,
			"Times",
			"serif",
		},
		"mono": {
			"ui-monospace",
			"SFMono-Regular",
			"Menlo",
			"Monaco",
			"Consolas",
			`"Liberation Mono"`,
			`"Courier New"`,
			"monospace",
		},
	}
}

// Nord returns the nord-palette theme with MPLUS1 typography.
func Nord() Config {
	return Config{
		ContentGlobs: []string{"./templates/**/*.html", "./content/**/*.md"},
		Colors: map[string]string{
			"bg":          "#212830",
			"bg-light":    "#3b4252",
			"text":        "#eceff4",
			"accent":      "#8fbcbb",
			"accent-text": "#2e3440",
			"border":      "#4c566a",
			"link":        "#88c0d0",
			"primary":     "#8fbcbb",
			"primary-2":   "#88c0d0",
			"secondary":   "#81a1c1",
			"terciary":    "#5e81ac",
		},
		FontFamilies: map[string]FontFamily{
			"sans": {Names: []string{`"MPLUS1"`}},
			// the code face deliberately falls back to the sans stack
			"mono": {Names: []string{`"MPLUS1Code"`}, Fallback: "sans"},
		},
		Plugins: []string{},
	}
}

// Merge concatenates custom entries followed by the base stack into a new slice.
// Order is preserved and duplicates are kept.
func Merge(custom, base []string) []string {
	merged := make([]string, 0, len(custom)+len(base))
	merged = append(merged, custom...)
	return append(merged, base...)
}

// Resolve merges every font family of cfg with its fallback stack from base.
// A fallback role missing from base contributes nothing.
func Resolve(cfg Config, base BaseFamilies) map[string][]string {
	return lo.MapValues(cfg.FontFamilies, func(family FontFamily, role string) []string {
		return Merge(family.Names, base[family.FallbackRole(role)])
	})
}

// ColorNames returns the color names of cfg in lexical order.
func (c Config) ColorNames() []string {
	names := lo.Keys(c.Colors)
	slices.Sort(names)
	return names
}

// Roles returns the font family roles of cfg in lexical order.
func (c Config) Roles() []string {
	roles := lo.Keys(c.FontFamilies)
	slices.Sort(roles)
	return roles
}

// Clone returns a deep copy of c with nil collections replaced by empty ones.
func (c Config) Clone() Config {
	out := Config{
		ContentGlobs: append([]string{}, c.ContentGlobs...),
		Colors:       make(map[string]string, len(c.Colors)),
		FontFamilies: make(map[string]FontFamily, len(c.FontFamilies)),
		Plugins:      append([]string{}, c.Plugins...),
	}
	for name, value := range c.Colors {
		out.Colors[name] = value
	}
	for role, family := range c.FontFamilies {
		out.FontFamilies[role] = FontFamily{
			Names:    append([]string{}, family.Names...),
			Fallback: family.Fallback,
		}
	}
	return out
}
