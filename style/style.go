// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tailtheme/tailtheme/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a padded banner using error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Swatch renders a block of the given background color, labelled in a contrasting foreground.
// Invalid colors render as a plain, unstyled block.
func Swatch(hex string, width int) string {
	block := strings.Repeat(" ", width)

	fg, err := color.Contrasting(hex)
	if err != nil {
		return block
	}

	return Colored(color.New(fg), color.New(hex)).Render(block)
}
