package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sidelaunch/launchpad/internal/db"
)

func openUsageDB() (*db.DB, error) {
	path, err := db.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open usage db: %w", err)
	}
	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate usage db: %w", err)
	}
	return database, nil
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show per-agent model usage across runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openUsageDB()
		if err != nil {
			return err
		}
		defer database.Close()

		summary, err := database.AgentSummary()
		if err != nil {
			return err
		}
		if len(summary) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No usage recorded yet.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-22s %8s %8s %10s %12s\n", "AGENT", "CALLS", "ERRORS", "DISABLED", "AVG MS")
		fmt.Fprintf(w, "%-22s %8s %8s %10s %12s\n",
			strings.Repeat("-", 22),
			strings.Repeat("-", 8),
			strings.Repeat("-", 8),
			strings.Repeat("-", 10),
			strings.Repeat("-", 12))
		for _, u := range summary {
			fmt.Fprintf(w, "%-22s %8d %8d %10d %12.0f\n", u.Agent, u.Calls, u.Errors, u.Disabled, u.AvgDurationMS)
		}
		return nil
	},
}

var usageEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent usage events",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openUsageDB()
		if err != nil {
			return err
		}
		defer database.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := database.ListUsage(limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No usage recorded yet.")
			return nil
		}

		w := cmd.OutOrStdout()
		for _, e := range events {
			line := fmt.Sprintf("%s  %-22s %-16s", e.Timestamp, e.Agent, e.Event)
			if e.Model != "" {
				line += fmt.Sprintf("  %s (%dms)", e.Model, e.DurationMS)
			}
			fmt.Fprintln(w, line)
		}
		return nil
	},
}

var usageResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded usage events",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openUsageDB()
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Usage database reset.")
		return nil
	},
}

func init() {
	usageEventsCmd.Flags().Int("limit", 50, "maximum events to show")
	usageCmd.AddCommand(usageEventsCmd)
	usageCmd.AddCommand(usageResetCmd)
}
