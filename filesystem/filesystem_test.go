package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Reset(SetOsFs)

		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should start every MemMapFs empty", func() {
			SetMemMapFs()
			So(API().WriteFile("/theme.json", []byte("{}"), 0644), ShouldBeNil)

			SetMemMapFs()
			exists, err := API().Exists("/theme.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Should accept any afero backend", func() {
			Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().WriteFile("/theme.json", []byte("{}"), 0644), ShouldNotBeNil)
		})
	})
}
