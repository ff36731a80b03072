package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tailtheme/tailtheme/filesystem"
	"github.com/tailtheme/tailtheme/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("Should register every defined key", func() {
			So(Default, ShouldHaveLength, key.DefinedFieldsCount)
			So(EnvExposed, ShouldHaveLength, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("watch.debounce_ms"), ShouldEqual, "watch_debounce_ms")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.ThemePath]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "TAILTHEME_THEME_PATH")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ThemePath)
		})

		Convey("MarshalJSON should describe the type", func() {
			out, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"type":"string"`)
		})
	})
}
