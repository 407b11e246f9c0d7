package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "stanza",
	Short: "Render SQL statements from the command line",
	Long: `stanza - composable SQL statement construction

Renders parameterized SQL and DDL text the same way the library does,
without connecting to a database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(ddlCmd)
	rootCmd.AddCommand(versionCmd)
}
