package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tailtheme/tailtheme/color"
	"github.com/tailtheme/tailtheme/icon"
	"github.com/tailtheme/tailtheme/style"
	"github.com/tailtheme/tailtheme/theme"
	"github.com/tailtheme/tailtheme/util"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("json", "j", false, "Format the report as a JSON object")
	checkCmd.SetOut(os.Stdout)
}

type checkIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type checkReport struct {
	Path   string       `json:"path"`
	Valid  bool         `json:"valid"`
	Issues []checkIssue `json:"issues"`
	// Unknown lists keys the loader ignored.
	Unknown []string `json:"unknown"`
}

// checkCmd loads a theme source and reports every invariant it violates.
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a theme source and report every violation",
	Long: `Validate a theme source before it is handed to the style generator.

Colors must be 6-digit hex values prefixed with #, at least one content glob
is required and every font family must resolve to a non-empty stack once
merged with the generator's default families.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := themePath(args)

		format, err := themeFormat()
		handleErr(err)

		cfg, unknown, err := theme.DecodeFile(path, format)
		handleErr(err)

		issues := theme.Issues(cfg, theme.DefaultBase())
		report := checkReport{
			Path:  path,
			Valid: len(issues) == 0,
			Issues: lo.Map(issues, func(issue *theme.ValidationError, _ int) checkIssue {
				return checkIssue{Field: issue.Field, Reason: issue.Reason}
			}),
			Unknown: lo.Ternary(unknown == nil, []string{}, unknown),
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(report))
		} else {
			printReport(cmd, report)
		}

		if !report.Valid {
			os.Exit(1)
		}
	},
}

func printReport(cmd *cobra.Command, report checkReport) {
	for _, key := range report.Unknown {
		cmd.Printf("%s ignoring unknown key %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), key)
	}

	if report.Valid {
		cmd.Printf("%s %s is valid\n", style.Fg(color.Green)(icon.Get(icon.Success)), report.Path)
		return
	}

	cmd.Printf(
		"%s %s has %s\n",
		style.Fg(color.Red)(icon.Get(icon.Fail)),
		report.Path,
		util.Quantify(len(report.Issues), "issue", "issues"),
	)
	for _, issue := range report.Issues {
		cmd.Printf("  %s %s\n", style.Fg(color.Purple)(issue.Field), issue.Reason)
	}
}
