package cmd

import (
	"encoding/json"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tailtheme/tailtheme/color"
	"github.com/tailtheme/tailtheme/icon"
	"github.com/tailtheme/tailtheme/key"
	"github.com/tailtheme/tailtheme/style"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().StringP("filter", "q", "", "Only show colors whose name fuzzily matches the query")
	paletteCmd.Flags().BoolP("json", "j", false, "Format the palette as a JSON array")
	paletteCmd.SetOut(os.Stdout)
}

type paletteEntry struct {
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Luminance float64 `json:"luminance"`
	Category  string  `json:"category"`
}

// paletteCmd previews the theme colors as terminal swatches.
var paletteCmd = &cobra.Command{
	Use:   "palette [path]",
	Short: "Preview the theme colors with their perceived brightness",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadTheme(args)
		handleErr(err)

		names := cfg.ColorNames()
		if query := lo.Must(cmd.Flags().GetString("filter")); query != "" {
			names = lo.Filter(names, func(name string, _ int) bool {
				return fuzzy.MatchFold(query, name)
			})
		}

		entries := lo.Map(names, func(name string, _ int) paletteEntry {
			value := cfg.Colors[name]
			return paletteEntry{
				Name:      name,
				Value:     value,
				Luminance: lo.Must(color.Luminance(value)),
				Category:  lo.Must(color.LuminanceCategory(value)),
			}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		width := lo.Max([]int{viper.GetInt(key.PaletteSwatchWidth), 1})
		nameWidth := lo.Max(lo.Map(names, func(name string, _ int) int { return len(name) }))

		cmd.Println(style.Title(icon.Get(icon.Palette) + " palette"))
		for _, entry := range entries {
			cmd.Printf(
				"%s %-*s %s %s\n",
				style.Swatch(entry.Value, width),
				nameWidth, entry.Name,
				style.Fg(color.Yellow)(entry.Value),
				style.Faint(entry.Category),
			)
		}
	},
}
