package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSwatch(t *testing.T) {
	Convey("Swatch", t, func() {
		Convey("Should keep the requested width", func() {
			So(lipgloss.Width(Swatch("#8fbcbb", 6)), ShouldEqual, 6)
		})

		Convey("Should degrade to a blank block for an invalid color", func() {
			So(Swatch("teal-ish", 3), ShouldEqual, "   ")
		})
	})
}
