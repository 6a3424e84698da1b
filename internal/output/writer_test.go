package output

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

func sampleDoc() Doc {
	return Doc{
		Idea:             "AI-powered recipe app that suggests meals from fridge photos",
		TargetAudience:   "busy parents who hate meal planning",
		ProblemStatement: "no time to plan meals, food goes to waste",
		UniqueValueProp:  "See what's in your fridge, get tonight's dinner in seconds",
		ExpectedUsers:    "10,000 monthly active users",
		Budget:           "$500/month",
		TeamExpertise:    "Python, React, some AWS experience",
		IdeaValidation:   "Looks promising.",
		LandingPageCopy:  "Dinner, decided.",
		TechStack:        "Go on Fly.io.",
	}
}

func TestWriteProducesExactlyFourFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recipe-app-20250101-0930")
	if err := Write(dir, sampleDoc(), time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	want := []string{SummaryFile, IdeaValidationFile, LandingPageFile, TechStackFile}
	if len(names) != len(want) {
		t.Fatalf("got %d files %v, want 4", len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWriteResultFollowsHeading(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, sampleDoc(), time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, IdeaValidationFile))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "# Idea Validation\n\nLooks promising."
	if string(data) != want {
		t.Errorf("content = %q, want %q", string(data), want)
	}
}

func TestWriteIdempotentDir(t *testing.T) {
	dir := t.TempDir() // already exists
	if err := Write(dir, sampleDoc(), time.Now()); err != nil {
		t.Fatalf("Write into existing dir: %v", err)
	}
}

func TestSummaryDeterministic(t *testing.T) {
	doc := sampleDoc()
	at := time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)

	a := Summary(doc, at)
	b := Summary(doc, at)
	if a != b {
		t.Fatal("Summary is not deterministic for identical inputs")
	}

	if !strings.Contains(a, "Generated: 2025-03-14 15:09") {
		t.Errorf("summary missing generation timestamp:\n%s", a)
	}
	if !strings.Contains(a, doc.Idea) || !strings.Contains(a, doc.Budget) {
		t.Error("summary missing verbatim input fields")
	}
}
