package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/db"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

// BookingStore is the persistence surface the booking conflict check runs
// against. WithTx yields a transaction-backed store so the conflict lookup
// and the write commit atomically.
type BookingStore interface {
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	ListForVenueDate(ctx context.Context, venue string, date time.Time, excludeID int64) ([]*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id int64) error
	WithTx(ctx context.Context, fn func(ctx context.Context, store BookingStore) error) error
}

// BookingRepository implements BookingStore over pgx. The zero q is the pool;
// WithTx clones the repository around a transaction.
type BookingRepository struct {
	pool *pgxpool.Pool
	q    Querier
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		pool: pool,
		q:    pool,
	}
}

// WithTx runs fn against a transaction-backed copy of the repository. A
// repository that is already transaction-backed reuses its transaction.
func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context, store BookingStore) error) error {
	if _, inTx := r.q.(pgx.Tx); inTx {
		return fn(ctx, r)
	}

	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &BookingRepository{pool: r.pool, q: tx})
	})
}

const bookingColumns = `id, venue, booking_date, start_time, end_time, detail, booked_by, created_at, updated_at`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking
	var detailJSON []byte
	err := row.Scan(
		&b.ID,
		&b.Venue,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&detailJSON,
		&b.BookedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(detailJSON) > 0 {
		if err := json.Unmarshal(detailJSON, &b.Detail); err != nil {
			return nil, fmt.Errorf("error decoding booking detail: %w", err)
		}
	}

	return &b, nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error retrieving booking: %w", err)
	}

	return booking, nil
}

// ListForVenueDate retrieves every booking for the same venue and date,
// excluding excludeID when it is non-zero (self-exclusion on update).
func (r *BookingRepository) ListForVenueDate(ctx context.Context, venue string, date time.Time, excludeID int64) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE venue = $1 AND booking_date = $2 AND id != $3
		ORDER BY start_time
	`

	rows, err := r.q.Query(ctx, query, venue, date, excludeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookings for venue: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetAll retrieves a page of bookings ordered by date and start time
func (r *BookingRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY booking_date DESC, start_time OFFSET $1 LIMIT $2`

	rows, err := r.q.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// CountAll returns the total number of bookings
func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return count, nil
}

// Insert creates a new booking
func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	detailJSON, err := json.Marshal(booking.Detail)
	if err != nil {
		return fmt.Errorf("error encoding booking detail: %w", err)
	}

	query := `
		INSERT INTO bookings (venue, booking_date, start_time, end_time, detail, booked_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err = r.q.QueryRow(ctx, query,
		booking.Venue, booking.Date, booking.StartTime, booking.EndTime,
		detailJSON, booking.BookedBy,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}

	return nil
}

// Update replaces an existing booking's fields
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	detailJSON, err := json.Marshal(booking.Detail)
	if err != nil {
		return fmt.Errorf("error encoding booking detail: %w", err)
	}

	query := `
		UPDATE bookings
		SET venue = $1, booking_date = $2, start_time = $3, end_time = $4,
			detail = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.q.Exec(ctx, query,
		booking.Venue, booking.Date, booking.StartTime, booking.EndTime,
		detailJSON, booking.ID)
	if err != nil {
		return fmt.Errorf("error updating booking: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking by ID
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting booking: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
