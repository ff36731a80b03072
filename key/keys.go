// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Theme Source - these keys locate and decode the theme declaration.
const (
	ThemePath   = "theme.path"
	ThemeFormat = "theme.format"
)

// Reloading - these keys tune the file watcher used by the watch command.
const (
	WatchDebounceMs = "watch.debounce_ms"
)

// Palette Preview - these keys define how color swatches are rendered.
const (
	PaletteSwatchWidth = "palette.swatch_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
	CliWrap    = "cli.wrap"
)
