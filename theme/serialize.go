package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Serialize encodes cfg in the given format. JSON, TOML and YAML output loads back into an equal Config.
func Serialize(cfg Config, format Format) ([]byte, error) {
	cfg = cfg.Clone()

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(toDocument(cfg), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatTOML:
		return toml.Marshal(toDocument(cfg))
	case FormatYAML:
		return yaml.Marshal(toDocument(cfg))
	case FormatJS:
		return RenderJS(cfg)
	default:
		return nil, fmt.Errorf("unknown theme format %q", format)
	}
}

// toDocument lays cfg out in the source shape. Families without an explicit
// fallback use the list shorthand.
func toDocument(cfg Config) map[string]any {
	fonts := make(map[string]any, len(cfg.FontFamilies))
	for role, family := range cfg.FontFamilies {
		if family.Fallback == "" {
			fonts[role] = family.Names
			continue
		}
		fonts[role] = map[string]any{
			"names":    family.Names,
			"fallback": family.Fallback,
		}
	}

	return map[string]any{
		"content": cfg.ContentGlobs,
		"theme": map[string]any{
			"extend": map[string]any{
				"colors":     cfg.Colors,
				"fontFamily": fonts,
			},
		},
		"plugins": cfg.Plugins,
	}
}

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var jsTemplate = lo.Must(template.New("js").Funcs(template.FuncMap{
	"quote": jsString,
	"key": func(name string) string {
		if jsIdentifier.MatchString(name) {
			return name
		}
		return jsString(name)
	},
	"member": func(name string) string {
		if jsIdentifier.MatchString(name) {
			return "." + name
		}
		return "[" + jsString(name) + "]"
	},
}).Parse(`const defaultTheme = require("tailwindcss/defaultTheme");

/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [{{ range $i, $glob := .Content }}{{ if $i }}, {{ end }}{{ quote $glob }}{{ end }}],
  theme: {
    extend: {
      colors: {
{{- range .Colors }}
        {{ key .Name }}: {{ quote .Value }},
{{- end }}
      },
      fontFamily: {
{{- range .Fonts }}
        {{ key .Role }}: [{{ range .Names }}{{ quote . }}, {{ end }}...defaultTheme.fontFamily{{ member .Fallback }}],
{{- end }}
      },
    },
  },
  plugins: [{{ range $i, $plugin := .Plugins }}{{ if $i }}, {{ end }}require({{ quote $plugin }}){{ end }}],
};
`))

type jsColor struct {
	Name, Value string
}

type jsFont struct {
	Role, Fallback string
	Names          []string
}

// RenderJS emits cfg as a generator config module that spreads the generator's own
// default font stacks after the custom names.
func RenderJS(cfg Config) ([]byte, error) {
	data := struct {
		Content []string
		Colors  []jsColor
		Fonts   []jsFont
		Plugins []string
	}{
		Content: cfg.ContentGlobs,
		Colors: lo.Map(cfg.ColorNames(), func(name string, _ int) jsColor {
			return jsColor{Name: name, Value: cfg.Colors[name]}
		}),
		Fonts: lo.Map(cfg.Roles(), func(role string, _ int) jsFont {
			family := cfg.FontFamilies[role]
			return jsFont{Role: role, Fallback: family.FallbackRole(role), Names: family.Names}
		}),
		Plugins: cfg.Plugins,
	}

	var b bytes.Buffer
	if err := jsTemplate.Execute(&b, data); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func jsString(s string) string {
	// JSON string literals are valid JavaScript string literals
	return string(lo.Must(json.Marshal(s)))
}
