package db

import (
	"database/sql"
	"fmt"
)

// Usage event types.
const (
	EventConfigEnabled  = "config_enabled"
	EventConfigDisabled = "config_disabled"
	EventModelCall      = "model_call"
	EventModelError     = "model_error"
)

// UsageEvent represents a row in the usage_events table.
type UsageEvent struct {
	ID          int
	RunID       string
	Agent       string
	Event       string
	Model       string
	DurationMS  int64
	OutputChars int
	Timestamp   string
}

// LogUsage inserts a usage event.
func (d *DB) LogUsage(runID, agent, event, model string, durationMS int64, outputChars int) error {
	_, err := d.conn.Exec(
		`INSERT INTO usage_events (run_id, agent, event, model, duration_ms, output_chars) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, agent, event, model, durationMS, outputChars,
	)
	if err != nil {
		return fmt.Errorf("log usage event: %w", err)
	}
	return nil
}

// ListUsage returns the most recent usage events, newest first.
func (d *DB) ListUsage(limit int) ([]UsageEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.conn.Query(
		`SELECT id, run_id, agent, event, model, duration_ms, output_chars, timestamp
		 FROM usage_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list usage events: %w", err)
	}
	defer rows.Close()

	var events []UsageEvent
	for rows.Next() {
		var e UsageEvent
		var model sql.NullString
		var duration sql.NullInt64
		var chars sql.NullInt64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Agent, &e.Event, &model, &duration, &chars, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan usage event: %w", err)
		}
		e.Model = model.String
		e.DurationMS = duration.Int64
		e.OutputChars = int(chars.Int64)
		events = append(events, e)
	}
	return events, rows.Err()
}

// AgentUsage aggregates model-call stats for one agent.
type AgentUsage struct {
	Agent         string
	Calls         int
	Errors        int
	Disabled      int
	AvgDurationMS float64
}

// AgentSummary returns per-agent call counts and average durations across
// all recorded runs.
func (d *DB) AgentSummary() ([]AgentUsage, error) {
	rows, err := d.conn.Query(`
		SELECT agent,
			SUM(CASE WHEN event = 'model_call' THEN 1 ELSE 0 END) as calls,
			SUM(CASE WHEN event = 'model_error' THEN 1 ELSE 0 END) as errors,
			SUM(CASE WHEN event = 'config_disabled' THEN 1 ELSE 0 END) as disabled,
			COALESCE(AVG(CASE WHEN event = 'model_call' THEN duration_ms END), 0) as avg_ms
		FROM usage_events
		GROUP BY agent
		ORDER BY agent`)
	if err != nil {
		return nil, fmt.Errorf("query agent summary: %w", err)
	}
	defer rows.Close()

	var out []AgentUsage
	for rows.Next() {
		var u AgentUsage
		if err := rows.Scan(&u.Agent, &u.Calls, &u.Errors, &u.Disabled, &u.AvgDurationMS); err != nil {
			return nil, fmt.Errorf("scan agent summary: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
