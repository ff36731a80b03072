package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/tailtheme/tailtheme/theme"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON Schema of theme sources for editor integration.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema describing theme sources",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(theme.Schema()))
	},
}
