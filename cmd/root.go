package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "askwell",
	Short: "Askwell Q&A platform backend",
	Long:  `Askwell is a Q&A platform backend: signup, sign-in, questions, answers, and admin user management over a REST API.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
