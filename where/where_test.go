package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tailtheme/tailtheme/filesystem"
	"github.com/tailtheme/tailtheme/key"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honors the override", func() {
			t.Setenv(EnvConfigPath, "/custom/tailtheme")
			So(Config(), ShouldEqual, "/custom/tailtheme")
			So(lo.Must(filesystem.API().IsDir("/custom/tailtheme")), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Theme()", func() {
			Reset(func() { viper.Set(key.ThemePath, "") })

			viper.Set(key.ThemePath, "/srv/site/theme.toml")
			So(Theme(), ShouldEqual, "/srv/site/theme.toml")

			viper.Set(key.ThemePath, "site/theme.yaml")
			So(filepath.IsAbs(Theme()), ShouldBeTrue)
			So(Theme(), ShouldEndWith, filepath.Join("site", "theme.yaml"))

			viper.Set(key.ThemePath, "")
			So(Theme(), ShouldEndWith, "theme.json")
		})
	})
}
