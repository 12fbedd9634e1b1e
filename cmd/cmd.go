// Package cmd defines the command-line interface for contribs.
package cmd

import (
	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("start", "s", "", "Start date (YYYY-MM-DD) or 'beginning'")
	rootCmd.PersistentFlags().StringP("end", "e", "", "End date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringP("branch", "b", "", "Branch to analyze (defaults to the current branch)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("width", "w", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored values in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
