// Package pipeline runs the launch workflow: three AI-Config-driven agent
// stages followed by the output writer, sequenced over a linear graph.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sidelaunch/launchpad/internal/aiconfig"
	"github.com/sidelaunch/launchpad/internal/config"
	"github.com/sidelaunch/launchpad/internal/db"
	"github.com/sidelaunch/launchpad/internal/llm"
	"github.com/sidelaunch/launchpad/internal/output"
	"github.com/sidelaunch/launchpad/internal/targeting"
)

// Workflow node names.
const (
	NodeValidateIdea     = "validate_idea"
	NodeWriteLandingPage = "write_landing_page"
	NodeRecommendStack   = "recommend_stack"
	NodeSaveOutputs      = "save_outputs"
)

// Runner holds the collaborators the stages need. Stages are methods so a
// fully-wired Runner is the only way to construct the workflow.
type Runner struct {
	configs  *aiconfig.Client
	model    llm.Client
	cfg      *config.Launchpad
	usage    *db.DB // optional local usage log; nil disables it
	runID    string
	progress io.Writer // live progress output; nil = silent
	results  []StageResult
}

// NewRunner creates a stage runner.
func NewRunner(configs *aiconfig.Client, model llm.Client, cfg *config.Launchpad) *Runner {
	return &Runner{configs: configs, model: model, cfg: cfg}
}

// SetProgress sets a writer for live progress output (e.g. os.Stderr).
func (r *Runner) SetProgress(w io.Writer) {
	r.progress = w
}

// SetUsageLog attaches the local usage database, scoping its entries to
// the given run ID.
func (r *Runner) SetUsageLog(usage *db.DB, runID string) {
	r.usage = usage
	r.runID = runID
}

// Results returns the per-stage outcomes recorded so far, in order.
func (r *Runner) Results() []StageResult {
	out := make([]StageResult, len(r.results))
	copy(out, r.results)
	return out
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.progress != nil {
		fmt.Fprintf(r.progress, format+"\n", args...)
	}
}

func (r *Runner) logUsage(agent, event, model string, durationMS int64, outputChars int) {
	if r.usage != nil {
		_ = r.usage.LogUsage(r.runID, agent, event, model, durationMS, outputChars)
	}
}

// Workflow assembles the four-node linear launch graph:
// validate_idea -> write_landing_page -> recommend_stack -> save_outputs.
func (r *Runner) Workflow() (*Workflow, error) {
	w := NewWorkflow()

	nodes := []struct {
		name string
		fn   NodeFunc
	}{
		{NodeValidateIdea, r.ValidateIdea},
		{NodeWriteLandingPage, r.WriteLandingPage},
		{NodeRecommendStack, r.RecommendStack},
		{NodeSaveOutputs, r.SaveOutputs},
	}
	for _, n := range nodes {
		if err := w.AddNode(n.name, n.fn); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(nodes)-1; i++ {
		if err := w.AddEdge(nodes[i].name, nodes[i+1].name); err != nil {
			return nil, err
		}
	}
	if err := w.SetEntry(NodeValidateIdea); err != nil {
		return nil, err
	}
	return w, nil
}

// ValidateIdea runs the idea-validator agent.
func (r *Runner) ValidateIdea(ctx context.Context, st *State) error {
	r.logf("[%s] Analyzing your idea...", config.AgentIdeaValidator)
	text, err := r.invoke(ctx, st, config.AgentIdeaValidator, aiconfig.Vars{
		"idea":              st.Idea,
		"target_audience":   st.TargetAudience,
		"problem_statement": st.ProblemStatement,
	})
	if err != nil {
		return err
	}
	st.IdeaValidation = text
	return nil
}

// WriteLandingPage runs the landing-page-writer agent.
func (r *Runner) WriteLandingPage(ctx context.Context, st *State) error {
	r.logf("[%s] Writing landing page copy...", config.AgentLandingPageWriter)
	text, err := r.invoke(ctx, st, config.AgentLandingPageWriter, aiconfig.Vars{
		"idea":              st.Idea,
		"target_audience":   st.TargetAudience,
		"unique_value_prop": st.UniqueValueProp,
	})
	if err != nil {
		return err
	}
	st.LandingPageCopy = text
	return nil
}

// RecommendStack runs the tech-stack-advisor agent.
func (r *Runner) RecommendStack(ctx context.Context, st *State) error {
	r.logf("[%s] Recommending tech stack...", config.AgentTechStackAdvisor)
	text, err := r.invoke(ctx, st, config.AgentTechStackAdvisor, aiconfig.Vars{
		"expected_users": st.ExpectedUsers,
		"budget":         st.Budget,
		"team_expertise": st.TeamExpertise,
	})
	if err != nil {
		return err
	}
	st.TechStack = text
	return nil
}

// SaveOutputs writes the final state to the run's output directory.
func (r *Runner) SaveOutputs(ctx context.Context, st *State) error {
	r.logf("[saving] Writing output files...")
	doc := output.Doc{
		Idea:             st.Idea,
		TargetAudience:   st.TargetAudience,
		ProblemStatement: st.ProblemStatement,
		UniqueValueProp:  st.UniqueValueProp,
		ExpectedUsers:    st.ExpectedUsers,
		Budget:           st.Budget,
		TeamExpertise:    st.TeamExpertise,
		IdeaValidation:   st.IdeaValidation,
		LandingPageCopy:  st.LandingPageCopy,
		TechStack:        st.TechStack,
	}
	if err := output.Write(st.OutputDir, doc, st.CreatedAt); err != nil {
		return fmt.Errorf("save outputs: %w", err)
	}
	r.logf("[done] Output saved to: %s/", st.OutputDir)
	return nil
}

// invoke is the shared shape of the three agent stages: build a targeting
// context, fetch the named config, and either call the model with the
// fetched instructions or fall back to the disabled placeholder. A model
// failure aborts the run; a disabled config never does.
func (r *Runner) invoke(ctx context.Context, st *State, agentKey string, vars aiconfig.Vars) (string, error) {
	tctx, err := targeting.Build(st.UserID, nil)
	if err != nil {
		return "", fmt.Errorf("build targeting context: %w", err)
	}

	agentCfg, ok := r.configs.AgentConfig(agentKey, tctx, vars)
	if !ok {
		r.logf("[%s] Config not enabled, skipping", agentKey)
		r.logUsage(agentKey, db.EventConfigDisabled, "", 0, 0)
		r.results = append(r.results, StageResult{Agent: agentKey, Outcome: OutcomeSkipped})
		return DisabledText, nil
	}

	r.logf("[%s] Model: %s", agentKey, agentCfg.Model)
	r.logUsage(agentKey, db.EventConfigEnabled, agentCfg.Model, 0, 0)

	start := time.Now()
	resp, err := r.model.Complete(ctx, llm.Request{
		Model:     agentCfg.Model,
		System:    agentCfg.Instructions,
		User:      r.cfg.Agents[agentKey].Prompt,
		MaxTokens: r.cfg.MaxTokens,
	})
	elapsed := time.Since(start)
	if err != nil {
		agentCfg.Tracker.TrackError()
		r.logUsage(agentKey, db.EventModelError, agentCfg.Model, elapsed.Milliseconds(), 0)
		r.results = append(r.results, StageResult{Agent: agentKey, Outcome: OutcomeError, Model: agentCfg.Model, DurationMS: elapsed.Milliseconds()})
		return "", fmt.Errorf("[%s] model call: %w", agentKey, err)
	}

	agentCfg.Tracker.TrackSuccess()
	agentCfg.Tracker.TrackDuration(elapsed)
	r.logUsage(agentKey, db.EventModelCall, agentCfg.Model, elapsed.Milliseconds(), len(resp.Text))
	r.results = append(r.results, StageResult{Agent: agentKey, Outcome: OutcomeGenerated, Model: agentCfg.Model, DurationMS: elapsed.Milliseconds()})
	return resp.Text, nil
}
