package theme

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// FieldContentGlobs is the field reported for content glob violations.
const FieldContentGlobs = "contentGlobs"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColor.MatchString(value)
}

// Validate checks cfg against its invariants and returns it unchanged when it holds.
// The first violation is returned, checking content globs, then colors by name, then font roles by name.
func Validate(cfg Config, base BaseFamilies) (Config, error) {
	if issues := Issues(cfg, base); len(issues) > 0 {
		return Config{}, issues[0]
	}
	return cfg, nil
}

// Issues lists every invariant violation of cfg in the order Validate reports them.
func Issues(cfg Config, base BaseFamilies) []*ValidationError {
	var issues []*ValidationError
	issues = append(issues, globIssues(cfg.ContentGlobs)...)
	issues = append(issues, colorIssues(cfg)...)
	issues = append(issues, fontIssues(cfg, base)...)
	return issues
}

func globIssues(globs []string) []*ValidationError {
	if len(globs) == 0 {
		return []*ValidationError{{Field: FieldContentGlobs, Reason: "at least one glob is required, nothing would be scanned"}}
	}

	var issues []*ValidationError
	for i, glob := range globs {
		if strings.TrimSpace(glob) == "" {
			issues = append(issues, &ValidationError{Field: FieldContentGlobs, Reason: fmt.Sprintf("entry %d is blank", i)})
			continue
		}
		if _, err := path.Match(glob, ""); err != nil {
			issues = append(issues, &ValidationError{Field: FieldContentGlobs, Reason: fmt.Sprintf("entry %d %q is malformed: %v", i, glob, err)})
		}
	}
	return issues
}

func colorIssues(cfg Config) []*ValidationError {
	var issues []*ValidationError
	for _, name := range cfg.ColorNames() {
		value := cfg.Colors[name]
		switch {
		case strings.TrimSpace(name) == "":
			issues = append(issues, &ValidationError{Field: "colors", Reason: "color name is blank"})
		case !IsHexColor(value):
			issues = append(issues, &ValidationError{Field: name, Reason: fmt.Sprintf("%q is not a #RRGGBB color", value)})
		}
	}
	return issues
}

func fontIssues(cfg Config, base BaseFamilies) []*ValidationError {
	var issues []*ValidationError
	for _, role := range cfg.Roles() {
		var (
			family = cfg.FontFamilies[role]
			field  = "fontFamilies." + role
		)

		if family.Fallback != "" {
			if _, ok := base[family.Fallback]; !ok {
				issues = append(issues, &ValidationError{Field: field, Reason: fmt.Sprintf("unknown fallback role %q", family.Fallback)})
				continue
			}
		}

		for i, name := range family.Names {
			if strings.TrimSpace(name) == "" {
				issues = append(issues, &ValidationError{Field: field, Reason: fmt.Sprintf("entry %d is blank", i)})
			}
		}

		if len(Merge(family.Names, base[family.FallbackRole(role)])) == 0 {
			issues = append(issues, &ValidationError{Field: field, Reason: "resolves to an empty font stack"})
		}
	}
	return issues
}
