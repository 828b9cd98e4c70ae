package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// whole set re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		user_id      TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS children (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		birth_date TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id            TEXT PRIMARY KEY,
		child_id      TEXT NOT NULL REFERENCES children(id) ON DELETE CASCADE,
		user_id       TEXT NOT NULL,
		start_time    TEXT NOT NULL,
		end_time      TEXT NOT NULL,
		event_type    TEXT NOT NULL DEFAULT 'scheduled',
		activity_name TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS custody_schedules (
		id           TEXT PRIMARY KEY,
		child_id     TEXT NOT NULL REFERENCES children(id) ON DELETE CASCADE,
		user_id      TEXT NOT NULL,
		days_of_week TEXT NOT NULL,
		parent_name  TEXT NOT NULL,
		parent_type  TEXT NOT NULL CHECK(parent_type IN ('mom','dad')),
		color        TEXT NOT NULL DEFAULT '#4285f4',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_calendar_events_child ON calendar_events(child_id)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_events_start ON calendar_events(child_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_custody_schedules_child ON custody_schedules(child_id)`,
	`CREATE INDEX IF NOT EXISTS idx_children_user ON children(user_id)`,
}
