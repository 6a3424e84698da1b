package pipeline

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	in := Inputs{Idea: "recipe app", Budget: "$500/month"}
	rec, err := s.Create("run-abc", "recipe-app", "user-1", "output/recipe-app-x", in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.Status != StatusPending {
		t.Errorf("Status = %q, want %q", rec.Status, StatusPending)
	}
	if rec.CreatedAt == "" {
		t.Error("CreatedAt should not be empty")
	}

	// Round-trip through disk.
	got, err := s.Get("run-abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Slug != "recipe-app" {
		t.Errorf("Slug = %q", got.Slug)
	}
	if got.Inputs.Budget != "$500/month" {
		t.Errorf("Inputs.Budget = %q", got.Inputs.Budget)
	}
	if got.OutputDir != "output/recipe-app-x" {
		t.Errorf("OutputDir = %q", got.OutputDir)
	}
}

func TestCreateDuplicate(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("run-1", "a", "u", "o", Inputs{}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create("run-1", "b", "u", "o", Inputs{}); err == nil {
		t.Fatal("expected error creating duplicate run")
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("nope"); err == nil {
		t.Fatal("expected error for missing run")
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	s.Create("run-1", "a", "u", "o", Inputs{})

	err := s.Update("run-1", func(rec *RunRecord) {
		rec.Status = StatusCompleted
		rec.Stages = append(rec.Stages, StageResult{Agent: "idea-validator", Outcome: OutcomeGenerated})
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.Get("run-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %q", got.Status)
	}
	if len(got.Stages) != 1 || got.Stages[0].Agent != "idea-validator" {
		t.Errorf("Stages = %+v", got.Stages)
	}
}

func TestListFilterAndDelete(t *testing.T) {
	s := newTestStore(t)
	s.Create("run-1", "a", "u", "o", Inputs{})
	s.Create("run-2", "b", "u", "o", Inputs{})
	s.Update("run-2", func(rec *RunRecord) { rec.Status = StatusFailed })

	all, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d runs, want 2", len(all))
	}

	failed, err := s.List(StatusFailed)
	if err != nil {
		t.Fatalf("List(failed): %v", err)
	}
	if len(failed) != 1 || failed[0].ID != "run-2" {
		t.Errorf("failed runs = %+v", failed)
	}

	if err := s.Delete("run-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("run-1"); err == nil {
		t.Fatal("run-1 should be gone")
	}
	if err := s.Delete("run-1"); err == nil {
		t.Fatal("expected error deleting missing run")
	}
}
