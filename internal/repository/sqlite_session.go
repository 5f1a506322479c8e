package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cadence-sh/cadence/internal/db"
	"github.com/cadence-sh/cadence/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// A plan's sessions are only ever written as a complete set: scheduling is
// all-or-nothing, so partial rewrites never exist.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, plan_id, phase_id, milestone_id, task_id, subtask_id,
	cognitive, difficulty, item_minutes, allocated_min, week_index,
	session_date, start_utc, end_utc, timezone, seq, created_at`

func (r *SQLiteSessionRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE plan_id = ? ORDER BY seq`
	return r.querySessions(ctx, query, planID)
}

// ListExcludingPlan returns every committed session that belongs to another
// plan, in chronological order. Scheduling treats these as occupied time so
// plans never overlap each other.
func (r *SQLiteSessionRepo) ListExcludingPlan(ctx context.Context, planID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE plan_id != ? ORDER BY start_utc`
	return r.querySessions(ctx, query, planID)
}

func (r *SQLiteSessionRepo) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE end_utc > ? ORDER BY start_utc LIMIT ?`
	return r.querySessions(ctx, query, from.UTC().Format(time.RFC3339), limit)
}

func (r *SQLiteSessionRepo) ListLinks(ctx context.Context, sessionID string) ([]domain.SessionItemLink, error) {
	query := `SELECT session_id, phase_id, milestone_id, task_id, subtask_id, title, order_index
		FROM session_items WHERE session_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing session items: %w", err)
	}
	defer rows.Close()

	var links []domain.SessionItemLink
	for rows.Next() {
		var l domain.SessionItemLink
		var taskID, subtaskID sql.NullString
		if err := rows.Scan(&l.SessionID, &l.PhaseID, &l.MilestoneID, &taskID, &subtaskID, &l.Title, &l.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning session item: %w", err)
		}
		l.TaskID = taskID.String
		l.SubtaskID = subtaskID.String
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session items: %w", err)
	}
	return links, nil
}

// ReplaceForPlan deletes the plan's existing sessions and inserts the new
// set with its item links. Callers run this inside a transaction so a failed
// insert never leaves the plan half-scheduled.
func (r *SQLiteSessionRepo) ReplaceForPlan(ctx context.Context, planID string, sessions []*domain.Session, links []domain.SessionItemLink) error {
	if err := r.DeleteByPlan(ctx, planID); err != nil {
		return err
	}

	insertSession := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, s := range sessions {
		_, err := r.db.ExecContext(ctx, insertSession,
			s.ID,
			planID,
			s.PhaseID,
			s.MilestoneID,
			nullableStrToValue(s.TaskID),
			nullableStrToValue(s.SubtaskID),
			string(s.Cognitive),
			s.Difficulty,
			s.ItemMinutes,
			s.AllocatedMin,
			s.WeekIndex,
			s.Date.Format(dateLayout),
			s.StartUTC.UTC().Format(time.RFC3339),
			s.EndUTC.UTC().Format(time.RFC3339),
			s.Timezone,
			s.Sequence,
			s.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting session %s: %w", s.ID, err)
		}
	}

	insertItem := `INSERT INTO session_items (session_id, phase_id, milestone_id, task_id, subtask_id, title, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, l := range links {
		_, err := r.db.ExecContext(ctx, insertItem,
			l.SessionID,
			l.PhaseID,
			l.MilestoneID,
			nullableStrToValue(l.TaskID),
			nullableStrToValue(l.SubtaskID),
			l.Title,
			l.OrderIndex,
		)
		if err != nil {
			return fmt.Errorf("inserting session item for %s: %w", l.SessionID, err)
		}
	}
	return nil
}

// DeleteByPlan removes a plan's sessions and their item links. The links are
// deleted explicitly rather than left to the FK cascade: the foreign_keys
// pragma is per-connection, so a fresh pooled connection would skip it.
func (r *SQLiteSessionRepo) DeleteByPlan(ctx context.Context, planID string) error {
	deleteItems := `DELETE FROM session_items
		WHERE session_id IN (SELECT id FROM sessions WHERE plan_id = ?)`
	if _, err := r.db.ExecContext(ctx, deleteItems, planID); err != nil {
		return fmt.Errorf("deleting session items for plan %s: %w", planID, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE plan_id = ?`, planID); err != nil {
		return fmt.Errorf("deleting sessions for plan %s: %w", planID, err)
	}
	return nil
}

func (r *SQLiteSessionRepo) querySessions(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(rows *sql.Rows) (*domain.Session, error) {
	var s domain.Session
	var planID, cognitive, dateStr, startStr, endStr, createdStr string
	var taskID, subtaskID sql.NullString

	err := rows.Scan(
		&s.ID, &planID, &s.PhaseID, &s.MilestoneID, &taskID, &subtaskID,
		&cognitive, &s.Difficulty, &s.ItemMinutes, &s.AllocatedMin, &s.WeekIndex,
		&dateStr, &startStr, &endStr, &s.Timezone, &s.Sequence, &createdStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	s.TaskID = taskID.String
	s.SubtaskID = subtaskID.String
	s.Cognitive = domain.CognitiveType(cognitive)

	if s.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing session_date: %w", err)
	}
	if s.StartUTC, err = time.Parse(time.RFC3339, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_utc: %w", err)
	}
	if s.EndUTC, err = time.Parse(time.RFC3339, endStr); err != nil {
		return nil, fmt.Errorf("parsing end_utc: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
