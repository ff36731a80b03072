package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tailtheme/tailtheme/color"
	"github.com/tailtheme/tailtheme/filesystem"
	"github.com/tailtheme/tailtheme/icon"
	"github.com/tailtheme/tailtheme/style"
	"github.com/tailtheme/tailtheme/theme"
	"github.com/tailtheme/tailtheme/util"
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing theme source")
}

// initCmd scaffolds a theme source from the nord example.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the nord example theme to a new theme source",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := themePath(args)

		format, err := themeFormat()
		handleErr(err)
		if format == "" {
			format, err = theme.FormatFromPath(path)
			handleErr(err)
		}

		if util.Exists(path) && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite it", path))
		}

		out, err := theme.Serialize(theme.Nord(), format)
		handleErr(err)

		handleErr(filesystem.API().MkdirAll(filepath.Dir(path), os.ModePerm))
		handleErr(filesystem.API().WriteFile(path, out, 0644))

		fmt.Printf(
			"%s wrote %s theme to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(string(format)),
			path,
		)
	},
}
