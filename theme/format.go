package theme

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a theme serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	// FormatJS is the generator's native module syntax. It can be written but not loaded.
	FormatJS Format = "js"
)

// AvailableFormats returns every format accepted by ParseFormat.
func AvailableFormats() []string {
	return []string{string(FormatJSON), string(FormatTOML), string(FormatYAML), string(FormatJS)}
}

// ParseFormat resolves a format name, accepting the usual aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "cjs", "mjs":
		return FormatJS, nil
	default:
		return "", fmt.Errorf("unknown theme format %q, available formats: %s", name, strings.Join(AvailableFormats(), ", "))
	}
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer theme format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Loadable reports whether Load accepts the format.
func (f Format) Loadable() bool {
	return f == FormatJSON || f == FormatTOML || f == FormatYAML
}
