package theme

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

type hexValue string

func (hexValue) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     hexColor.String(),
		Description: "6-digit hex RGB color prefixed with #",
	}
}

type fontFamilyValue FontFamily

func (fontFamilyValue) JSONSchema() *jsonschema.Schema {
	names := &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Type: "string"},
	}

	props := jsonschema.NewProperties()
	props.Set("names", names)
	props.Set("fallback", &jsonschema.Schema{
		Type:        "string",
		Description: "Role in the base font table appended after names",
	})

	return &jsonschema.Schema{
		Description: "Custom font names, either as a list or with an explicit fallback role",
		OneOf: []*jsonschema.Schema{
			names,
			{
				Type:                 "object",
				Properties:           props,
				Required:             []string{"names"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
	}
}

type schemaExtend struct {
	Colors     map[string]hexValue        `json:"colors,omitempty" jsonschema:"description=Color name to hex value"`
	FontFamily map[string]fontFamilyValue `json:"fontFamily,omitempty" jsonschema:"description=Family role to custom font names"`
}

type schemaTheme struct {
	Extend schemaExtend `json:"extend,omitempty"`
}

type schemaDocument struct {
	Content []string    `json:"content" jsonschema:"minItems=1,description=Glob patterns of the files scanned for class usage"`
	Theme   schemaTheme `json:"theme,omitempty"`
	Plugins []string    `json:"plugins,omitempty" jsonschema:"description=Opaque plugin identifiers"`
}

// Schema returns the JSON Schema of a theme source document.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		Namer: func(t reflect.Type) string {
			switch t {
			case reflect.TypeOf(schemaExtend{}):
				return "Extend"
			case reflect.TypeOf(schemaTheme{}):
				return "Theme"
			case reflect.TypeOf(hexValue("")):
				return "HexColor"
			case reflect.TypeOf(fontFamilyValue{}):
				return "FontFamily"
			}
			return t.Name()
		},
	}

	schema := reflector.Reflect(&schemaDocument{})
	schema.Title = "Theme configuration"
	return schema
}
