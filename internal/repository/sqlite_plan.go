package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cadence-sh/cadence/internal/db"
	"github.com/cadence-sh/cadence/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. The phase
// hierarchy is stored as a JSON document; queryable attributes are
// duplicated into columns.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	payload, err := json.Marshal(p.Phases)
	if err != nil {
		return fmt.Errorf("encoding plan phases: %w", err)
	}
	query := `INSERT INTO plans (id, goal_id, title, time_preference, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.GoalID,
		p.Title,
		string(p.Preference),
		string(payload),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT id, goal_id, title, time_preference, payload, created_at, updated_at
		FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT id, goal_id, title, time_preference, payload, created_at, updated_at
		FROM plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	payload, err := json.Marshal(p.Phases)
	if err != nil {
		return fmt.Errorf("encoding plan phases: %w", err)
	}
	query := `UPDATE plans SET goal_id = ?, title = ?, time_preference = ?, payload = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.GoalID,
		p.Title,
		string(p.Preference),
		string(payload),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func scanPlan(scan func(dest ...any) error) (*domain.Plan, error) {
	var p domain.Plan
	var preference, payload, createdAt, updatedAt string

	if err := scan(&p.ID, &p.GoalID, &p.Title, &preference, &payload, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p.Preference = domain.TimePreference(preference)
	if err := json.Unmarshal([]byte(payload), &p.Phases); err != nil {
		return nil, fmt.Errorf("decoding plan phases: %w", err)
	}

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
