package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Luminance categories, from the lightest to the darkest.
const (
	Bright = "bright"
	Normal = "normal"
	Dark   = "dark"
	Darker = "darker"
)

// Luminance returns the perceived brightness of a CSS color in [0, 1].
func Luminance(css string) (float64, error) {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return 0, err
	}

	return 0.299*c.R + 0.587*c.G + 0.114*c.B, nil
}

// LuminanceCategory buckets a CSS color by perceived brightness.
func LuminanceCategory(css string) (string, error) {
	l, err := Luminance(css)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return Bright, nil
	case l >= .55:
		return Normal, nil
	case l >= .30:
		return Dark, nil
	default:
		return Darker, nil
	}
}

// Contrasting returns black or white, whichever reads better on top of the given background.
func Contrasting(css string) (string, error) {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return "", err
	}

	bg := colorful.Color{R: c.R, G: c.G, B: c.B}
	black, white := colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1}
	if bg.DistanceCIEDE2000(black) > bg.DistanceCIEDE2000(white) {
		return black.Hex(), nil
	}
	return white.Hex(), nil
}
