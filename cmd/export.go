package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tailtheme/tailtheme/filesystem"
	"github.com/tailtheme/tailtheme/theme"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("to", "T", string(theme.FormatJS), "Output format (json, toml, yaml, js)")
	lo.Must0(exportCmd.RegisterFlagCompletionFunc("to", completionFormats))
	exportCmd.Flags().StringP("output", "o", "", "Specify a file path to write the output")
}

// exportCmd converts a validated theme source into another format.
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Validate a theme source and write it in another format",
	Long: `Validate a theme source and write it in another format.

The js format emits a generator config module that spreads the generator's
default font families after the custom ones.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadTheme(args)
		handleErr(err)

		format, err := theme.ParseFormat(lo.Must(cmd.Flags().GetString("to")))
		handleErr(err)

		out, err := theme.Serialize(cfg, format)
		handleErr(err)

		handleErr(writeExport(lo.Must(cmd.Flags().GetString("output")), out))
	},
}

// writeExport writes out to path, or to stdout when path is empty.
// The file is closed before any error is returned.
func writeExport(path string, out []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(out)
		return err
	}

	return filesystem.API().WriteFile(path, out, 0644)
}
