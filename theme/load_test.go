package theme

import (
	"errors"
	"testing"

	"github.com/tailtheme/tailtheme/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

const nordJSON = `{
  "content": ["./templates/**/*.html", "./content/**/*.md"],
  "theme": {
    "extend": {
      "colors": {
        "bg": "#212830",
        "bg-light": "#3b4252",
        "text": "#eceff4",
        "accent": "#8fbcbb",
        "accent-text": "#2e3440",
        "border": "#4c566a",
        "link": "#88c0d0",
        "primary": "#8fbcbb",
        "primary-2": "#88c0d0",
        "secondary": "#81a1c1",
        "terciary": "#5e81ac"
      },
      "fontFamily": {
        "sans": ["\"MPLUS1\""],
        "mono": {"names": ["\"MPLUS1Code\""], "fallback": "sans"}
      }
    }
  },
  "plugins": []
}`

const minimalYAML = `
content:
  - ./templates/**/*.html
theme:
  extend:
    colors:
      bg: "#212830"
    fontFamily:
      sans: [Inter]
darkMode: class
`

const minimalTOML = `
content = ["./templates/**/*.html"]
plugins = ["@tailwindcss/typography"]

[theme.extend.colors]
bg = "#212830"

[theme.extend.fontFamily]
sans = ["Inter"]
`

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should parse the nord theme from JSON", func() {
			cfg, err := Load([]byte(nordJSON), FormatJSON)
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Nord())
		})

		Convey("Should parse YAML and ignore unknown keys", func() {
			cfg, err := Load([]byte(minimalYAML), FormatYAML)
			So(err, ShouldBeNil)
			So(cfg.ContentGlobs, ShouldResemble, []string{"./templates/**/*.html"})
			So(cfg.Colors, ShouldResemble, map[string]string{"bg": "#212830"})
			So(cfg.FontFamilies["sans"], ShouldResemble, FontFamily{Names: []string{"Inter"}})
			So(cfg.Plugins, ShouldBeEmpty)
		})

		Convey("Should parse TOML", func() {
			cfg, err := Load([]byte(minimalTOML), FormatTOML)
			So(err, ShouldBeNil)
			So(cfg.ContentGlobs, ShouldResemble, []string{"./templates/**/*.html"})
			So(cfg.Colors["bg"], ShouldEqual, "#212830")
			So(cfg.FontFamilies["sans"].Names, ShouldResemble, []string{"Inter"})
			So(cfg.Plugins, ShouldResemble, []string{"@tailwindcss/typography"})
		})

		Convey("Should fill absent sections with empty collections", func() {
			cfg, err := Load([]byte(`{}`), FormatJSON)
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Config{}.Clone())
		})

		Convey("Should not validate", func() {
			cfg, err := Load([]byte(`{"content": [], "theme": {"extend": {"colors": {"bg": "red"}}}}`), FormatJSON)
			So(err, ShouldBeNil)
			So(cfg.Colors["bg"], ShouldEqual, "red")
		})

		Convey("Should match keys case-sensitively", func() {
			cfg, err := Load([]byte(`{"CONTENT": ["a"], "THEME": {"EXTEND": {"COLORS": {"bg": "#000000"}}}}`), FormatJSON)
			So(err, ShouldBeNil)
			So(cfg.ContentGlobs, ShouldBeEmpty)
			So(cfg.Colors, ShouldBeEmpty)

			_, err = Validate(cfg, DefaultBase())

			var verr *ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(verr.Field, ShouldEqual, FieldContentGlobs)
		})

		Convey("Should not let a differently cased block shadow the real one", func() {
			src := `{"content": ["a"], "theme": {"extend": {"colors": {"bg": "red"}, "Colors": {"bg": "#000000"}}}}`
			cfg, err := Load([]byte(src), FormatJSON)
			So(err, ShouldBeNil)
			So(cfg.Colors, ShouldResemble, map[string]string{"bg": "red"})
		})

		Convey("Should fail with a ParseError", func() {
			cases := []struct {
				name   string
				src    string
				format Format
			}{
				{"malformed json", `{"content": [`, FormatJSON},
				{"malformed toml", `content = [`, FormatTOML},
				{"malformed yaml", "content: [\n", FormatYAML},
				{"non-object root", `["./templates/**/*.html"]`, FormatJSON},
				{"mistyped content", `{"content": "./templates/**/*.html"}`, FormatJSON},
				{"mistyped color", `{"theme": {"extend": {"colors": {"bg": 212830}}}}`, FormatJSON},
				{"mistyped font name", `{"theme": {"extend": {"fontFamily": {"sans": [1]}}}}`, FormatJSON},
				{"duplicate json color", `{"theme": {"extend": {"colors": {"bg": "#000000", "bg": "#ffffff"}}}}`, FormatJSON},
				{"duplicate yaml color", "theme:\n  extend:\n    colors:\n      bg: \"#000000\"\n      bg: \"#ffffff\"\n", FormatYAML},
				{"duplicate toml color", "[theme.extend.colors]\nbg = \"#000000\"\nbg = \"#ffffff\"\n", FormatTOML},
				{"unloadable format", `module.exports = {}`, FormatJS},
				{"json null", `null`, FormatJSON},
				{"empty yaml", "", FormatYAML},
				{"font object without names", `{"theme": {"extend": {"fontFamily": {"mono": {"fallback": "serif"}}}}}`, FormatJSON},
			}

			for _, c := range cases {
				Convey(c.name, func() {
					_, err := Load([]byte(c.src), c.format)
					So(err, ShouldNotBeNil)

					var perr *ParseError
					So(errors.As(err, &perr), ShouldBeTrue)
					So(perr.Format, ShouldEqual, c.format)
				})
			}
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Should report unknown keys in sorted order", func() {
			src := `{"darkMode": "class", "content": ["a"], "theme": {"extend": {"Colors": {}}, "screens": {}}}`
			cfg, unknown, err := Decode([]byte(src), FormatJSON)
			So(err, ShouldBeNil)
			So(cfg.ContentGlobs, ShouldResemble, []string{"a"})
			So(unknown, ShouldResemble, []string{"darkMode", "theme.extend.Colors", "theme.screens"})
		})

		Convey("Should report nothing for a clean source", func() {
			_, unknown, err := Decode([]byte(nordJSON), FormatJSON)
			So(err, ShouldBeNil)
			So(unknown, ShouldBeEmpty)
		})
	})
}

func TestSerializeRoundTrip(t *testing.T) {
	Convey("Serialize", t, func() {
		for _, format := range []Format{FormatJSON, FormatTOML, FormatYAML} {
			Convey("Should round-trip the nord theme through "+string(format), func() {
				out, err := Serialize(Nord(), format)
				So(err, ShouldBeNil)

				cfg, err := Load(out, format)
				So(err, ShouldBeNil)
				So(cfg, ShouldResemble, Nord())
			})

			Convey("Should round-trip an empty theme through "+string(format), func() {
				out, err := Serialize(Config{}, format)
				So(err, ShouldBeNil)

				cfg, err := Load(out, format)
				So(err, ShouldBeNil)
				So(cfg, ShouldResemble, Config{}.Clone())
			})
		}

		Convey("Should reject an unknown format", func() {
			_, err := Serialize(Nord(), Format("xml"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRenderJS(t *testing.T) {
	Convey("RenderJS", t, func() {
		out, err := RenderJS(Nord())
		So(err, ShouldBeNil)

		js := string(out)
		So(js, ShouldStartWith, `const defaultTheme = require("tailwindcss/defaultTheme");`)
		So(js, ShouldContainSubstring, `content: ["./templates/**/*.html", "./content/**/*.md"],`)
		So(js, ShouldContainSubstring, `bg: "#212830",`)
		So(js, ShouldContainSubstring, `"bg-light": "#3b4252",`)
		So(js, ShouldContainSubstring, `sans: ["\"MPLUS1\"", ...defaultTheme.fontFamily.sans],`)
		So(js, ShouldContainSubstring, `mono: ["\"MPLUS1Code\"", ...defaultTheme.fontFamily.sans],`)
		So(js, ShouldContainSubstring, "plugins: [],")

		Convey("Should require plugins and quote non-identifier roles", func() {
			cfg := Nord()
			cfg.Plugins = []string{"@tailwindcss/forms"}
			cfg.FontFamilies["hand-written"] = FontFamily{Names: []string{"Caveat"}, Fallback: "sans"}

			out, err := RenderJS(cfg)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `plugins: [require("@tailwindcss/forms")],`)
			So(string(out), ShouldContainSubstring, `"hand-written": ["Caveat", ...defaultTheme.fontFamily.sans],`)
		})
	})
}

func TestLoadFile(t *testing.T) {
	filesystem.SetMemMapFs()

	Convey("LoadFile", t, func() {
		Convey("Should infer the format from the extension", func() {
			So(filesystem.API().WriteFile("/themes/nord.json", []byte(nordJSON), 0644), ShouldBeNil)

			cfg, err := LoadFile("/themes/nord.json", "")
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Nord())
		})

		Convey("Should honor an explicit format", func() {
			So(filesystem.API().WriteFile("/themes/theme.conf", []byte(minimalTOML), 0644), ShouldBeNil)

			cfg, err := LoadFile("/themes/theme.conf", FormatTOML)
			So(err, ShouldBeNil)
			So(cfg.Colors["bg"], ShouldEqual, "#212830")
		})

		Convey("Should fail without an extension or a format", func() {
			_, err := LoadFile("/themes/theme", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Should fail for a missing file", func() {
			_, err := LoadFile("/themes/missing.json", "")
			So(err, ShouldNotBeNil)
		})
	})
}
