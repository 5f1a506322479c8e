package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS plans (
		id              TEXT PRIMARY KEY,
		goal_id         TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL DEFAULT '',
		time_preference TEXT NOT NULL DEFAULT ''
		                CHECK(time_preference IN ('','morning','afternoon','evening')),
		payload         TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_goal ON plans(goal_id)`,

	`CREATE TABLE IF NOT EXISTS user_constraints (
		id          TEXT PRIMARY KEY DEFAULT 'default',
		sleep_start INTEGER NOT NULL DEFAULT 1380,
		sleep_end   INTEGER NOT NULL DEFAULT 420,
		peak_start  INTEGER,
		peak_end    INTEGER,
		blocks      TEXT NOT NULL DEFAULT '[]',
		exceptions  TEXT NOT NULL DEFAULT '[]'
	)`,

	// Seed default constraints row
	`INSERT OR IGNORE INTO user_constraints (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id        TEXT PRIMARY KEY,
		title     TEXT NOT NULL DEFAULT '',
		start_utc TEXT NOT NULL,
		end_utc   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_start ON bookings(start_utc)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		plan_id       TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		phase_id      TEXT NOT NULL,
		milestone_id  TEXT NOT NULL,
		task_id       TEXT,
		subtask_id    TEXT,
		cognitive     TEXT NOT NULL
		              CHECK(cognitive IN ('admin','shallow_work','learning','creative','deep_work')),
		difficulty    INTEGER NOT NULL DEFAULT 1,
		item_minutes  INTEGER NOT NULL,
		allocated_min INTEGER NOT NULL,
		week_index    INTEGER NOT NULL,
		session_date  TEXT NOT NULL,
		start_utc     TEXT NOT NULL,
		end_utc       TEXT NOT NULL,
		timezone      TEXT NOT NULL,
		seq           INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_plan ON sessions(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_utc)`,

	`CREATE TABLE IF NOT EXISTS session_items (
		session_id   TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		phase_id     TEXT NOT NULL,
		milestone_id TEXT NOT NULL,
		task_id      TEXT,
		subtask_id   TEXT,
		title        TEXT NOT NULL DEFAULT '',
		order_index  INTEGER NOT NULL,
		PRIMARY KEY (session_id, order_index)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_items_milestone ON session_items(milestone_id)`,
}
