package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "launchpad",
	Short: "launchpad is a side-project launch assistant",
	Long: `launchpad interviews you about a side-project idea, then runs three
LaunchDarkly-managed AI agents (idea validation, landing-page copy, tech
stack advice) and writes the results as markdown files under a timestamped
output directory.

Run history lives in ~/.launchpad/runs/ (JSON) and usage events in
~/.launchpad/launchpad.db (SQLite).`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(configCmd)
}
