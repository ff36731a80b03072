// Package cmd implements the command-line interface for tailtheme.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tailtheme/tailtheme/color"
	"github.com/tailtheme/tailtheme/constant"
	"github.com/tailtheme/tailtheme/icon"
	"github.com/tailtheme/tailtheme/key"
	"github.com/tailtheme/tailtheme/log"
	"github.com/tailtheme/tailtheme/style"
	"github.com/tailtheme/tailtheme/theme"
	"github.com/tailtheme/tailtheme/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Theme source to operate on")
	lo.Must0(viper.BindPFlag(key.ThemePath, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.PersistentFlags().StringP("format", "F", "", "Format of the theme source (json, toml, yaml)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", completionFormats))
	lo.Must0(viper.BindPFlag(key.ThemeFormat, rootCmd.PersistentFlags().Lookup("format")))
}

// rootCmd defines the entry point for the tailtheme application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Load, validate and export utility-first CSS theme declarations",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Palette, typography and content globs for your style generator"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)

	var verr *theme.ValidationError
	if errors.As(err, &verr) {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s %s\n", icon.Get(icon.Fail), style.Fg(color.Purple)(verr.Field), verr.Reason)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
	}
	os.Exit(1)
}

func completionFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return theme.AvailableFormats(), cobra.ShellCompDirectiveNoFileComp
}

// themePath returns the theme source named by args, falling back to the configured one.
func themePath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return where.Theme()
}

// themeFormat returns the configured source format, or empty to infer it from the path.
func themeFormat() (theme.Format, error) {
	name := viper.GetString(key.ThemeFormat)
	if name == "" {
		return "", nil
	}
	return theme.ParseFormat(name)
}

// loadTheme loads and validates the theme source named by args.
func loadTheme(args []string) (theme.Config, error) {
	format, err := themeFormat()
	if err != nil {
		return theme.Config{}, err
	}

	cfg, err := theme.LoadFile(themePath(args), format)
	if err != nil {
		return theme.Config{}, err
	}

	return theme.Validate(cfg, theme.DefaultBase())
}
