package db

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "launchpad.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := d.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return d
}

func TestMigrateIdempotent(t *testing.T) {
	d := newTestDB(t)
	if err := d.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestLogAndListUsage(t *testing.T) {
	d := newTestDB(t)

	if err := d.LogUsage("run-1", "idea-validator", EventModelCall, "claude-sonnet-4-5", 2300, 812); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}
	if err := d.LogUsage("run-1", "landing-page-writer", EventConfigDisabled, "", 0, 0); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}

	events, err := d.ListUsage(10)
	if err != nil {
		t.Fatalf("ListUsage: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Agent != "landing-page-writer" || events[0].Event != EventConfigDisabled {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Model != "claude-sonnet-4-5" || events[1].DurationMS != 2300 || events[1].OutputChars != 812 {
		t.Errorf("events[1] = %+v", events[1])
	}
}

func TestLogUsageRejectsUnknownEvent(t *testing.T) {
	d := newTestDB(t)
	if err := d.LogUsage("run-1", "idea-validator", "made_up", "", 0, 0); err == nil {
		t.Fatal("expected CHECK constraint failure for unknown event type")
	}
}

func TestAgentSummary(t *testing.T) {
	d := newTestDB(t)

	d.LogUsage("run-1", "idea-validator", EventModelCall, "m", 1000, 10)
	d.LogUsage("run-2", "idea-validator", EventModelCall, "m", 3000, 20)
	d.LogUsage("run-2", "idea-validator", EventModelError, "m", 0, 0)
	d.LogUsage("run-2", "tech-stack-advisor", EventConfigDisabled, "", 0, 0)

	summary, err := d.AgentSummary()
	if err != nil {
		t.Fatalf("AgentSummary: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("got %d agents, want 2", len(summary))
	}

	iv := summary[0]
	if iv.Agent != "idea-validator" {
		t.Fatalf("summary[0].Agent = %q", iv.Agent)
	}
	if iv.Calls != 2 || iv.Errors != 1 {
		t.Errorf("idea-validator calls/errors = %d/%d, want 2/1", iv.Calls, iv.Errors)
	}
	if iv.AvgDurationMS != 2000 {
		t.Errorf("idea-validator avg = %f, want 2000", iv.AvgDurationMS)
	}

	ts := summary[1]
	if ts.Agent != "tech-stack-advisor" || ts.Disabled != 1 || ts.Calls != 0 {
		t.Errorf("summary[1] = %+v", ts)
	}
}

func TestReset(t *testing.T) {
	d := newTestDB(t)
	d.LogUsage("run-1", "idea-validator", EventModelCall, "m", 1, 1)
	if err := d.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	events, err := d.ListUsage(10)
	if err != nil {
		t.Fatalf("ListUsage after reset: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after reset, want 0", len(events))
	}
}
