package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sidelaunch/launchpad/internal/pipeline"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past launch runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := pipeline.DefaultStore()
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}

		statusFilter, _ := cmd.Flags().GetString("status")
		runs, err := store.List(statusFilter)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs found.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-38s %-12s %-32s %s\n", "RUN", "STATUS", "SLUG", "CREATED")
		fmt.Fprintf(w, "%-38s %-12s %-32s %s\n",
			strings.Repeat("-", 38),
			strings.Repeat("-", 12),
			strings.Repeat("-", 32),
			strings.Repeat("-", 7))
		for _, r := range runs {
			fmt.Fprintf(w, "%-38s %-12s %-32s %s\n", r.ID, r.Status, r.Slug, r.CreatedAt)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := pipeline.DefaultStore()
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}

		rec, err := store.Get(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Run %s: %s\n", rec.ID, rec.Slug)
		fmt.Fprintf(w, "  Status:     %s\n", rec.Status)
		fmt.Fprintf(w, "  User:       %s\n", rec.UserID)
		fmt.Fprintf(w, "  Output:     %s\n", rec.OutputDir)
		fmt.Fprintf(w, "  Idea:       %s\n", rec.Inputs.Idea)
		fmt.Fprintf(w, "  Created:    %s\n", rec.CreatedAt)
		fmt.Fprintf(w, "  Updated:    %s\n", rec.UpdatedAt)

		if len(rec.Stages) > 0 {
			fmt.Fprintln(w, "  Stages:")
			for _, s := range rec.Stages {
				line := fmt.Sprintf("    %s: %s", s.Agent, s.Outcome)
				if s.Model != "" {
					line += fmt.Sprintf(" (%s, %dms)", s.Model, s.DurationMS)
				}
				fmt.Fprintln(w, line)
			}
		}
		return nil
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := pipeline.DefaultStore()
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
		return nil
	},
}

func init() {
	runsCmd.Flags().String("status", "", "filter by status (pending, in_progress, completed, failed)")
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
}
