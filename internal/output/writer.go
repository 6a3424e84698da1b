// Package output serializes final pipeline results into the run's
// markdown files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File names written into every run directory.
const (
	SummaryFile        = "00-summary.md"
	IdeaValidationFile = "01-idea-validation.md"
	LandingPageFile    = "02-landing-page.md"
	TechStackFile      = "03-tech-stack.md"
)

// Doc holds everything the writer needs: the verbatim user inputs and the
// three stage results.
type Doc struct {
	Idea             string
	TargetAudience   string
	ProblemStatement string
	UniqueValueProp  string
	ExpectedUsers    string
	Budget           string
	TeamExpertise    string

	IdeaValidation  string
	LandingPageCopy string
	TechStack       string
}

// Write creates dir (idempotently) and writes the four markdown files.
// Writes are sequential and not atomic as a set; a failure mid-way leaves
// the earlier files in place.
func Write(dir string, doc Doc, generatedAt time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	files := []struct {
		name, heading, body string
	}{
		{IdeaValidationFile, "Idea Validation", doc.IdeaValidation},
		{LandingPageFile, "Landing Page Copy", doc.LandingPageCopy},
		{TechStackFile, "Tech Stack Recommendation", doc.TechStack},
	}
	for _, f := range files {
		content := fmt.Sprintf("# %s\n\n%s", f.heading, f.body)
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, SummaryFile), []byte(Summary(doc, generatedAt)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", SummaryFile, err)
	}
	return nil
}

// Summary renders the summary file body. It is a pure function of the
// inputs and the timestamp, so re-rendering with identical arguments is
// byte-identical.
func Summary(doc Doc, generatedAt time.Time) string {
	return fmt.Sprintf(`# Side Project Summary

## Idea
%s

## Target Audience
%s

## Problem Statement
%s

## Unique Value Proposition
%s

## Technical Requirements
- Expected Users: %s
- Budget: %s
- Team Expertise: %s

---
Generated: %s
`,
		doc.Idea,
		doc.TargetAudience,
		doc.ProblemStatement,
		doc.UniqueValueProp,
		doc.ExpectedUsers,
		doc.Budget,
		doc.TeamExpertise,
		generatedAt.Format("2006-01-02 15:04"),
	)
}
