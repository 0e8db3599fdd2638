package store

import (
	"context"
	"time"
)

// timestampLayout is the fixed textual format of audit timestamps,
// second resolution, local time.
const timestampLayout = "2006-01-02 15:04:05"

// LogEntry is one row of the append-only action log.
type LogEntry struct {
	Timestamp   string `json:"timestamp"`
	ActionType  string `json:"action_type"`
	Description string `json:"description"`
}

// LogAction appends one audit entry stamped with the current local time.
// Entries are immutable once written.
//
// Callers recording an entry alongside a primary operation must treat a
// returned error as diagnostic only - it never justifies failing or
// rolling back the operation it accompanies.
func (s *Store) LogAction(ctx context.Context, actionType, description string) error {
	timestamp := time.Now().Format(timestampLayout)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_logs (timestamp, action_type, description)
		VALUES (?, ?, ?)
	`, timestamp, actionType, description)
	if err != nil {
		return &StoreError{Code: ErrCodeAuditLogFailed, Message: "append log entry", Err: err}
	}
	return nil
}

// GetLogs returns all audit entries, newest first (timestamp DESC with
// log_id DESC as tiebreak for entries in the same second).
//
// Returns an empty slice (not nil) when the log is empty.
func (s *Store) GetLogs(ctx context.Context) ([]LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT timestamp, action_type, description
		FROM user_logs
		ORDER BY timestamp DESC, log_id DESC
	`)
	if err != nil {
		return nil, newQueryFailed("query logs", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.Timestamp, &e.ActionType, &e.Description); err != nil {
			return nil, newQueryFailed("scan log entry", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, newQueryFailed("iterate logs", err)
	}

	if entries == nil {
		entries = []LogEntry{}
	}

	return entries, nil
}
