package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cadence-sh/cadence/internal/db"
	"github.com/cadence-sh/cadence/internal/domain"
)

// SQLiteBookingRepo implements BookingRepo using a SQLite database.
// Booking times are stored as RFC3339 UTC strings, which sort
// lexicographically in chronological order.
type SQLiteBookingRepo struct {
	db db.DBTX
}

// NewSQLiteBookingRepo creates a new SQLiteBookingRepo.
func NewSQLiteBookingRepo(conn db.DBTX) *SQLiteBookingRepo {
	return &SQLiteBookingRepo{db: conn}
}

func (r *SQLiteBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, title, start_utc, end_utc) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.Start.UTC().Format(time.RFC3339),
		b.End.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return nil
}

func (r *SQLiteBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT id, title, start_utc, end_utc FROM bookings ORDER BY start_utc`
	return r.queryBookings(ctx, query)
}

func (r *SQLiteBookingRepo) ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	query := `SELECT id, title, start_utc, end_utc FROM bookings
		WHERE start_utc < ? AND end_utc > ? ORDER BY start_utc`
	return r.queryBookings(ctx, query,
		end.UTC().Format(time.RFC3339),
		start.UTC().Format(time.RFC3339),
	)
}

func (r *SQLiteBookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBookingRepo) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var startStr, endStr string
		if err := rows.Scan(&b.ID, &b.Title, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		if b.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return nil, fmt.Errorf("parsing booking start: %w", err)
		}
		if b.End, err = time.Parse(time.RFC3339, endStr); err != nil {
			return nil, fmt.Errorf("parsing booking end: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}
	return bookings, nil
}
