package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sidelaunch/launchpad/internal/aiconfig"
	"github.com/sidelaunch/launchpad/internal/config"
	"github.com/sidelaunch/launchpad/internal/db"
	"github.com/sidelaunch/launchpad/internal/llm"
	"github.com/sidelaunch/launchpad/internal/pipeline"
)

const banner = "============================================================"

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Answer a few questions and run the launch agents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if errs := config.Validate(cfg); len(errs) > 0 {
			return fmt.Errorf("invalid config: %v", errs[0])
		}

		sdkKey := config.Credential(config.EnvSDKKey)
		if sdkKey == "" {
			return fmt.Errorf("%s is not set (environment or ~/.launchpad/.env)", config.EnvSDKKey)
		}
		apiKey := config.Credential(config.EnvAPIKey)
		if apiKey == "" {
			return fmt.Errorf("%s is not set (environment or ~/.launchpad/.env)", config.EnvAPIKey)
		}

		out := cmd.OutOrStdout()
		inputs, err := collectInputs(cmd.InOrStdin(), out)
		if err != nil {
			return fmt.Errorf("collect inputs: %w", err)
		}

		st := pipeline.NewState(inputs, cfg.Launchpad.OutputDir, time.Now())

		ldClient, err := aiconfig.Dial(sdkKey, 5*time.Second)
		if err != nil {
			return err
		}
		defer ldClient.Close()

		timeout, _ := time.ParseDuration(cfg.Launchpad.RequestTimeout) // validated above
		model := llm.NewAnthropicClientWithConfig(llm.Config{
			APIKey:  apiKey,
			BaseURL: cfg.Launchpad.BaseURL,
			Timeout: timeout,
		})

		store, err := pipeline.DefaultStore()
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}
		runID := uuid.NewString()
		if _, err := store.Create(runID, pipeline.Slugify(inputs.Idea), st.UserID, st.OutputDir, inputs); err != nil {
			return fmt.Errorf("create run record: %w", err)
		}

		dbPath, err := db.DefaultDBPath()
		if err != nil {
			return err
		}
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open usage db: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(); err != nil {
			return fmt.Errorf("migrate usage db: %w", err)
		}

		runner := pipeline.NewRunner(aiconfig.NewClient(ldClient), model, &cfg.Launchpad)
		runner.SetProgress(out)
		runner.SetUsageLog(database, runID)

		workflow, err := runner.Workflow()
		if err != nil {
			return fmt.Errorf("build workflow: %w", err)
		}

		fmt.Fprintln(out, "\n"+banner)
		fmt.Fprintln(out, "Launching agents...")
		fmt.Fprintln(out, banner)

		_ = store.Update(runID, func(rec *pipeline.RunRecord) {
			rec.Status = pipeline.StatusInProgress
		})

		runErr := workflow.Run(cmd.Context(), st)

		status := pipeline.StatusCompleted
		if runErr != nil {
			status = pipeline.StatusFailed
		}
		_ = store.Update(runID, func(rec *pipeline.RunRecord) {
			rec.Status = status
			rec.Stages = runner.Results()
		})

		// Flush events before exiting.
		ldClient.Flush()

		if runErr != nil {
			return fmt.Errorf("run pipeline: %w", runErr)
		}

		fmt.Fprintln(out, "\n"+banner)
		fmt.Fprintf(out, "Done! Check your output in: %s/\n", st.OutputDir)
		fmt.Fprintln(out, banner)
		return nil
	},
}

// questions for the seven input fields, in intake order.
var questions = []struct {
	prompt string
	field  func(*pipeline.Inputs) *string
}{
	{"What's your idea? (e.g., AI-powered recipe app)", func(in *pipeline.Inputs) *string { return &in.Idea }},
	{"Who is your target audience? (e.g., busy parents)", func(in *pipeline.Inputs) *string { return &in.TargetAudience }},
	{"What problem does it solve? (e.g., no time to plan meals)", func(in *pipeline.Inputs) *string { return &in.ProblemStatement }},
	{"What's your unique value proposition? (e.g., snap a photo, get dinner)", func(in *pipeline.Inputs) *string { return &in.UniqueValueProp }},
	{"Expected users? (e.g., 10,000 monthly active users)", func(in *pipeline.Inputs) *string { return &in.ExpectedUsers }},
	{"Monthly budget for infrastructure? (e.g., $500/month)", func(in *pipeline.Inputs) *string { return &in.Budget }},
	{"Team's tech expertise? (e.g., Python, React, AWS)", func(in *pipeline.Inputs) *string { return &in.TeamExpertise }},
}

// collectInputs runs the interactive intake: one question per field, answers
// trimmed, no further validation.
func collectInputs(r io.Reader, w io.Writer) (pipeline.Inputs, error) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "SIDE PROJECT LAUNCHER")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "\nAnswer a few questions about your side project idea:")

	var in pipeline.Inputs
	reader := bufio.NewReader(r)
	for _, q := range questions {
		fmt.Fprintf(w, "\n%s\n> ", q.prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return pipeline.Inputs{}, fmt.Errorf("read answer: %w", err)
		}
		*q.field(&in) = strings.TrimSpace(line)
	}
	return in, nil
}
