package pipeline

// Run statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Stage outcomes recorded per agent.
const (
	OutcomeGenerated = "generated"
	OutcomeSkipped   = "skipped"
	OutcomeError     = "error"
)

// RunRecord is the persisted state for a single launch run.
type RunRecord struct {
	ID        string        `json:"id"`
	Slug      string        `json:"slug"`
	UserID    string        `json:"user_id"`
	OutputDir string        `json:"output_dir"`
	Status    string        `json:"status"` // "pending", "in_progress", "completed", "failed"
	Inputs    Inputs        `json:"inputs"`
	Stages    []StageResult `json:"stages"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// StageResult records the outcome of one agent stage within a run.
type StageResult struct {
	Agent      string `json:"agent"`
	Outcome    string `json:"outcome"` // "generated", "skipped", "error"
	Model      string `json:"model,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
}
