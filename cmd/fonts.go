package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tailtheme/tailtheme/color"
	"github.com/tailtheme/tailtheme/icon"
	"github.com/tailtheme/tailtheme/style"
	"github.com/tailtheme/tailtheme/theme"
	"github.com/tailtheme/tailtheme/util"
)

func init() {
	rootCmd.AddCommand(fontsCmd)
	fontsCmd.Flags().BoolP("json", "j", false, "Format the resolved stacks as a JSON object")
	fontsCmd.SetOut(os.Stdout)
}

// fontsCmd prints every font family merged with the generator's default stacks.
var fontsCmd = &cobra.Command{
	Use:   "fonts [path]",
	Short: "Show the font stacks each family resolves to",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadTheme(args)
		handleErr(err)

		resolved := theme.Resolve(cfg, theme.DefaultBase())

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(resolved))
			return
		}

		width := util.TerminalWidth(80) - 4
		for i, role := range cfg.Roles() {
			family := cfg.FontFamilies[role]
			custom := len(family.Names)

			stack := lo.Map(resolved[role], func(name string, j int) string {
				if j < custom {
					return style.Bold(name)
				}
				return name
			})

			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Font),
				style.Fg(color.Purple)(util.Capitalize(role)),
				style.Faint("falls back to "+family.FallbackRole(role)),
			)
			cmd.Println(indent.String(wordwrap.String(strings.Join(stack, ", "), width), 4))

			if i < len(cfg.FontFamilies)-1 {
				cmd.Println()
			}
		}
	},
}
