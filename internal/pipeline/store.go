package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Store manages run records on disk.
type Store struct {
	baseDir string // defaults to ~/.launchpad/runs
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// DefaultStore returns a Store at ~/.launchpad/runs, creating the
// directory if needed.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".launchpad", "runs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{baseDir: dir}, nil
}

// BaseDir returns the store's root directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

func (s *Store) runPath(id string) string {
	return filepath.Join(s.baseDir, id, "run.json")
}

// Create initialises a new run record on disk.
func (s *Store) Create(id, slug, userID, outputDir string, in Inputs) (*RunRecord, error) {
	dir := filepath.Join(s.baseDir, id)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("run %s already exists", id)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir run dir: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rec := &RunRecord{
		ID:        id,
		Slug:      slug,
		UserID:    userID,
		OutputDir: outputDir,
		Status:    StatusPending,
		Inputs:    in,
		Stages:    []StageResult{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := WriteJSON(s.runPath(id), rec); err != nil {
		return nil, fmt.Errorf("write run.json: %w", err)
	}
	return rec, nil
}

// Get reads the record for a run.
func (s *Store) Get(id string) (*RunRecord, error) {
	var rec RunRecord
	if err := ReadJSON(s.runPath(id), &rec); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run %s not found", id)
		}
		return nil, err
	}
	return &rec, nil
}

// Update performs a read-modify-write of the run record.
func (s *Store) Update(id string, fn func(*RunRecord)) error {
	rec, err := s.Get(id)
	if err != nil {
		return err
	}
	fn(rec)
	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return WriteJSON(s.runPath(id), rec)
}

// List returns all runs, newest first, optionally filtered by status.
// Pass "" for statusFilter to return all runs.
func (s *Store) List(statusFilter string) ([]RunRecord, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", s.baseDir, err)
	}

	var runs []RunRecord
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.Get(entry.Name())
		if err != nil {
			continue // skip broken entries
		}
		if statusFilter == "" || rec.Status == statusFilter {
			runs = append(runs, *rec)
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt > runs[j].CreatedAt
	})
	return runs, nil
}

// Delete removes all data for a run.
func (s *Store) Delete(id string) error {
	dir := filepath.Join(s.baseDir, id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("run %s not found", id)
	}
	return os.RemoveAll(dir)
}
