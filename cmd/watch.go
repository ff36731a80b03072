package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tailtheme/tailtheme/color"
	"github.com/tailtheme/tailtheme/icon"
	"github.com/tailtheme/tailtheme/key"
	"github.com/tailtheme/tailtheme/style"
	"github.com/tailtheme/tailtheme/theme"
	"github.com/tailtheme/tailtheme/util"
	"github.com/tailtheme/tailtheme/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.SetOut(os.Stdout)
}

// watchCmd revalidates a theme source every time it changes.
var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Revalidate a theme source whenever it changes",
	Long: `Revalidate a theme source whenever it changes.

An invalid edit is reported and the last valid theme stays in effect until
the source is fixed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := themeFormat()
		handleErr(err)

		report := func(err error) {
			cmd.PrintErrf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
		}
		accepted := func(cfg theme.Config) {
			cmd.Printf(
				"%s %s accepted: %s, %s\n",
				style.Fg(color.Green)(icon.Get(icon.Reload)),
				time.Now().Format(time.TimeOnly),
				util.Quantify(len(cfg.Colors), "color", "colors"),
				util.Quantify(len(cfg.FontFamilies), "font family", "font families"),
			)
		}

		reloader := watch.New(themePath(args), theme.DefaultBase(), watch.Options{
			Format:   format,
			Debounce: time.Duration(viper.GetInt(key.WatchDebounceMs)) * time.Millisecond,
			OnReload: accepted,
			OnError:  report,
		})

		if cfg, err := reloader.Reload(); err != nil {
			report(err)
		} else {
			accepted(cfg)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("%s watching %s\n", style.Faint(icon.Get(icon.Reload)), reloader.Path())
		if err := reloader.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			handleErr(err)
		}
	},
}
