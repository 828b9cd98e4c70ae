package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/Tanudin/Happy-Child/internal/domain"
)

// eventColumns is the canonical SELECT column list for calendar_events.
const eventColumns = `id, child_id, user_id, start_time, end_time, event_type,
		activity_name, location, notes, created_at`

// SQLiteEventRepo implements EventRepo against the calendar_events table.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo. Pass a *sql.Tx-backed
// DBTX to scope the repo to a transaction.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Insert(ctx context.Context, e *domain.ScheduledActivity) error {
	query := `INSERT INTO calendar_events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ChildID,
		e.UserID,
		formatTime(e.StartTime),
		formatTime(e.EndTime),
		string(e.EventType),
		e.ActivityName,
		e.Location,
		e.Notes,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

// InsertBatch inserts all events with a single multi-row statement, the
// store-level equivalent of a batch insert call.
func (r *SQLiteEventRepo) InsertBatch(ctx context.Context, events []*domain.ScheduledActivity) error {
	if len(events) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO calendar_events (` + eventColumns + `) VALUES `)
	args := make([]any, 0, len(events)*10)
	for i, e := range events {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			e.ID,
			e.ChildID,
			e.UserID,
			formatTime(e.StartTime),
			formatTime(e.EndTime),
			string(e.EventType),
			e.ActivityName,
			e.Location,
			e.Notes,
			formatTime(e.CreatedAt),
		)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("batch inserting calendar events: %w", err)
	}
	return nil
}

// ListByChildRange returns the child's activities whose start time falls
// inside [from, to], both ends inclusive.
func (r *SQLiteEventRepo) ListByChildRange(ctx context.Context, childID string, from, to time.Time) ([]*domain.ScheduledActivity, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
		WHERE child_id = ? AND start_time >= ? AND start_time <= ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, childID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

// UpdateDayRange renames the activity persisted inside the given day
// bounds. This is the in-place edit path; the replace path is a
// DeleteDayRange followed by Insert.
func (r *SQLiteEventRepo) UpdateDayRange(ctx context.Context, childID string, start, end time.Time, activityName, notes string) error {
	query := `UPDATE calendar_events SET activity_name = ?, notes = ?
		WHERE child_id = ? AND start_time >= ? AND start_time <= ?`
	_, err := r.db.ExecContext(ctx, query, activityName, notes, childID, formatTime(start), formatTime(end))
	if err != nil {
		return fmt.Errorf("updating calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) DeleteDayRange(ctx context.Context, childID string, start, end time.Time) error {
	query := `DELETE FROM calendar_events
		WHERE child_id = ? AND start_time >= ? AND start_time <= ?`
	_, err := r.db.ExecContext(ctx, query, childID, formatTime(start), formatTime(end))
	if err != nil {
		return fmt.Errorf("deleting calendar events: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]*domain.ScheduledActivity, error) {
	var events []*domain.ScheduledActivity
	for rows.Next() {
		var e domain.ScheduledActivity
		var eventType, startStr, endStr, createdStr string

		err := rows.Scan(
			&e.ID, &e.ChildID, &e.UserID, &startStr, &endStr, &eventType,
			&e.ActivityName, &e.Location, &e.Notes, &createdStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning calendar event: %w", err)
		}

		e.EventType = domain.EventType(eventType)
		if e.StartTime, err = parseTime(startStr); err != nil {
			return nil, err
		}
		if e.EndTime, err = parseTime(endStr); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(createdStr); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar events: %w", err)
	}
	return events, nil
}
