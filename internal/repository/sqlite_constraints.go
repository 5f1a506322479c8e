package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/cadence-sh/cadence/internal/db"
	"github.com/cadence-sh/cadence/internal/domain"
)

// SQLiteConstraintsRepo implements ConstraintsRepo using a SQLite database.
// Constraints live in a single seeded row; blocks and exceptions are stored
// as JSON columns.
type SQLiteConstraintsRepo struct {
	db db.DBTX
}

// NewSQLiteConstraintsRepo creates a new SQLiteConstraintsRepo.
func NewSQLiteConstraintsRepo(conn db.DBTX) *SQLiteConstraintsRepo {
	return &SQLiteConstraintsRepo{db: conn}
}

func (r *SQLiteConstraintsRepo) Get(ctx context.Context) (*domain.UserConstraints, error) {
	query := `SELECT sleep_start, sleep_end, peak_start, peak_end, blocks, exceptions
		FROM user_constraints WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var c domain.UserConstraints
	var sleepStart, sleepEnd int
	var peakStart, peakEnd sql.NullInt64
	var blocks, exceptions string
	err := row.Scan(&sleepStart, &sleepEnd, &peakStart, &peakEnd, &blocks, &exceptions)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user constraints: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user constraints: %w", err)
	}

	c.SleepStart = domain.MinuteOfDay(sleepStart)
	c.SleepEnd = domain.MinuteOfDay(sleepEnd)
	if peakStart.Valid {
		c.PeakStart = domain.MinuteOfDay(peakStart.Int64)
	}
	if peakEnd.Valid {
		c.PeakEnd = domain.MinuteOfDay(peakEnd.Int64)
	}
	if err := json.Unmarshal([]byte(blocks), &c.Blocks); err != nil {
		return nil, fmt.Errorf("decoding recurring blocks: %w", err)
	}
	if err := json.Unmarshal([]byte(exceptions), &c.Exceptions); err != nil {
		return nil, fmt.Errorf("decoding date exceptions: %w", err)
	}
	return &c, nil
}

func (r *SQLiteConstraintsRepo) Upsert(ctx context.Context, c *domain.UserConstraints) error {
	blocks, err := json.Marshal(c.Blocks)
	if err != nil {
		return fmt.Errorf("encoding recurring blocks: %w", err)
	}
	if c.Blocks == nil {
		blocks = []byte("[]")
	}
	exceptions, err := json.Marshal(c.Exceptions)
	if err != nil {
		return fmt.Errorf("encoding date exceptions: %w", err)
	}
	if c.Exceptions == nil {
		exceptions = []byte("[]")
	}

	query := `INSERT OR REPLACE INTO user_constraints
		(id, sleep_start, sleep_end, peak_start, peak_end, blocks, exceptions)
		VALUES ('default', ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		int(c.SleepStart),
		int(c.SleepEnd),
		minuteOrNull(c.PeakStart),
		minuteOrNull(c.PeakEnd),
		string(blocks),
		string(exceptions),
	)
	if err != nil {
		return fmt.Errorf("upserting user constraints: %w", err)
	}
	return nil
}

// minuteOrNull stores an unset (zero) peak bound as SQL NULL.
func minuteOrNull(m domain.MinuteOfDay) interface{} {
	if m == 0 {
		return nil
	}
	return int(m)
}
