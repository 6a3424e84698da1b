package config

import (
	"fmt"
	"time"
)

// ValidationError represents a single validation issue with a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// recognizedAgents is the set of agent keys launchpad knows how to run.
var recognizedAgents = map[string]bool{
	AgentIdeaValidator:     true,
	AgentLandingPageWriter: true,
	AgentTechStackAdvisor:  true,
}

// Validate checks a config for structural and semantic errors.
// It returns a slice of all validation errors found (empty if valid).
func Validate(cfg *File) []ValidationError {
	var errs []ValidationError
	l := cfg.Launchpad

	if l.OutputDir == "" {
		errs = append(errs, ValidationError{Field: "launchpad.output_dir", Message: "is required"})
	}
	if l.MaxTokens < 1 {
		errs = append(errs, ValidationError{
			Field:   "launchpad.max_tokens",
			Message: fmt.Sprintf("must be positive, got %d", l.MaxTokens),
		})
	}
	if l.RequestTimeout != "" {
		if _, err := time.ParseDuration(l.RequestTimeout); err != nil {
			errs = append(errs, ValidationError{
				Field:   "launchpad.request_timeout",
				Message: fmt.Sprintf("invalid duration %q", l.RequestTimeout),
			})
		}
	}

	for key, a := range l.Agents {
		if !recognizedAgents[key] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("launchpad.agents.%s", key),
				Message: "unknown agent key",
			})
			continue
		}
		if a.Prompt == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("launchpad.agents.%s.prompt", key),
				Message: "is required",
			})
		}
	}

	return errs
}
