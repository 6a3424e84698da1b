package pipeline

import (
	"path/filepath"
	"strings"
	"time"
)

// DisabledText is stored in a stage's output field when its config is not
// enabled for the run's context.
const DisabledText = "Config not enabled"

// Inputs are the seven answers collected from the user. Immutable once the
// run starts.
type Inputs struct {
	Idea             string `json:"idea"`
	TargetAudience   string `json:"target_audience"`
	ProblemStatement string `json:"problem_statement"`
	UniqueValueProp  string `json:"unique_value_prop"`
	ExpectedUsers    string `json:"expected_users"`
	Budget           string `json:"budget"`
	TeamExpertise    string `json:"team_expertise"`
}

// State is the single record threaded through all stages. Output fields
// start empty and are each written exactly once, by one stage, in
// pipeline order.
type State struct {
	Inputs

	UserID    string
	OutputDir string
	CreatedAt time.Time

	IdeaValidation  string
	LandingPageCopy string
	TechStack       string
}

// NewState builds the initial pipeline state from user inputs. The output
// directory is <outputBase>/<slug>-<timestamp> and the user key is
// user-<timestamp>, both at minute granularity.
func NewState(in Inputs, outputBase string, now time.Time) *State {
	ts := now.Format("20060102-1504")
	return &State{
		Inputs:    in,
		UserID:    "user-" + ts,
		OutputDir: filepath.Join(outputBase, Slugify(in.Idea)+"-"+ts),
		CreatedAt: now,
	}
}

// Slugify derives a directory-safe slug from the idea text: lowercase,
// truncated to 30 characters, spaces and slashes turned into dashes, and
// anything else non-alphanumeric dropped.
func Slugify(idea string) string {
	s := strings.ToLower(idea)
	if len(s) > 30 {
		s = s[:30]
	}
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")

	var b strings.Builder
	for _, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
