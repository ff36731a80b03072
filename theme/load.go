package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tailtheme/tailtheme/filesystem"
	"github.com/tailtheme/tailtheme/log"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// document mirrors the on-disk layout of a theme source.
type document struct {
	Content []string `mapstructure:"content"`
	Theme   struct {
		Extend struct {
			Colors     map[string]string     `mapstructure:"colors"`
			FontFamily map[string]FontFamily `mapstructure:"fontFamily"`
		} `mapstructure:"extend"`
	} `mapstructure:"theme"`
	Plugins []string `mapstructure:"plugins"`
}

// Load parses a theme source in the given format.
// Unknown keys are ignored with a warning. Malformed input, mistyped known fields
// and duplicated keys fail with a *ParseError.
func Load(src []byte, format Format) (Config, error) {
	cfg, unknown, err := Decode(src, format)
	if err != nil {
		return Config{}, err
	}

	for _, key := range unknown {
		log.Warnf("theme: ignoring unknown key %s", key)
	}

	return cfg, nil
}

// Decode is Load without logging. It also returns the sorted dotted paths of the keys
// it did not recognize. Keys match case-sensitively.
func Decode(src []byte, format Format) (Config, []string, error) {
	if !format.Loadable() {
		return Config{}, nil, &ParseError{Format: format, Err: fmt.Errorf("format %q cannot be loaded", format)}
	}

	raw, err := unmarshal(src, format)
	if err != nil {
		return Config{}, nil, &ParseError{Format: format, Err: err}
	}
	if raw == nil {
		return Config{}, nil, &ParseError{Format: format, Err: errors.New("source is not a record")}
	}

	var (
		doc  document
		meta mapstructure.Metadata
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &doc,
		Metadata:   &meta,
		DecodeHook: fontFamilyHook,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return Config{}, nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Config{}, nil, &ParseError{Format: format, Err: err}
	}

	unknown := slices.Clone(meta.Unused)
	slices.Sort(unknown)

	cfg := Config{
		ContentGlobs: doc.Content,
		Colors:       doc.Theme.Extend.Colors,
		FontFamilies: doc.Theme.Extend.FontFamily,
		Plugins:      doc.Plugins,
	}
	return cfg.Clone(), unknown, nil
}

// LoadFile reads and parses the theme at path through the active filesystem backend.
// An empty format is inferred from the file extension.
func LoadFile(path string, format Format) (Config, error) {
	src, format, err := readSource(path, format)
	if err != nil {
		return Config{}, err
	}

	return Load(src, format)
}

// DecodeFile is LoadFile without logging, returning the unknown keys as Decode does.
func DecodeFile(path string, format Format) (Config, []string, error) {
	src, format, err := readSource(path, format)
	if err != nil {
		return Config{}, nil, err
	}

	return Decode(src, format)
}

func readSource(path string, format Format) ([]byte, Format, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, "", err
		}
	}

	src, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read theme: %w", err)
	}

	log.Debugf("theme: loading %s as %s", path, format)
	return src, format, nil
}

func unmarshal(src []byte, format Format) (map[string]any, error) {
	var raw map[string]any

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(src, &raw); err != nil {
			return nil, err
		}
		if err := checkDuplicateKeys(src); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(src, &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		// yaml.v3 already rejects duplicated mapping keys
		if err := yaml.Unmarshal(src, &raw); err != nil {
			return nil, err
		}
	}

	return raw, nil
}

// fontFamilyHook accepts the list shorthand for a font family.
// The object form must carry names.
func fontFamilyHook(from, to reflect.Type, data any) (any, error) {
	if from == nil || to != reflect.TypeOf(FontFamily{}) {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Slice, reflect.Array:
		return map[string]any{"names": data}, nil
	case reflect.Map:
		if m, ok := data.(map[string]any); ok {
			if _, ok := m["names"]; !ok {
				return nil, errors.New("font family object requires names")
			}
		}
	}

	return data, nil
}

// checkDuplicateKeys walks the JSON token stream and rejects objects that repeat a key,
// which encoding/json would otherwise resolve silently in favor of the last one.
func checkDuplicateKeys(src []byte) error {
	dec := json.NewDecoder(bytes.NewReader(src))

	var walk func(path []string) error
	walk = func(path []string) error {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		delim, ok := tok.(json.Delim)
		if !ok {
			return nil
		}

		switch delim {
		case '{':
			seen := make(map[string]struct{})
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := tok.(string)
				if !ok {
					return fmt.Errorf("unexpected object key %v", tok)
				}
				if _, dup := seen[key]; dup {
					return fmt.Errorf("duplicate key %q", strings.Join(append(path, key), "."))
				}
				seen[key] = struct{}{}

				if err := walk(append(path, key)); err != nil {
					return err
				}
			}
		case '[':
			for dec.More() {
				if err := walk(path); err != nil {
					return err
				}
			}
		}

		// closing delimiter
		_, err = dec.Token()
		return err
	}

	return walk(nil)
}
