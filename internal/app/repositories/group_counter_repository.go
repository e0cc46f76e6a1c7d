package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin/campushub/internal/app/models"
)

// GroupCounterRepository maintains one atomic sequence per cohort key
// (year, semester, day type, department code). It replaces a full-table
// student count so concurrent registrations cannot observe the same value.
type GroupCounterRepository struct {
	db *pgxpool.Pool
}

// NewGroupCounterRepository creates a new group counter repository
func NewGroupCounterRepository(db *pgxpool.Pool) *GroupCounterRepository {
	return &GroupCounterRepository{
		db: db,
	}
}

// Next atomically increments and returns the sequence for the cohort key.
// The first call for a key returns 1.
func (r *GroupCounterRepository) Next(ctx context.Context, year, semester int, dayType models.DayType, deptCode string) (int64, error) {
	query := `
		INSERT INTO group_counters (year, semester, day_type, department_code, seq)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (year, semester, day_type, department_code)
		DO UPDATE SET seq = group_counters.seq + 1
		RETURNING seq
	`

	var seq int64
	err := r.db.QueryRow(ctx, query, year, semester, dayType, deptCode).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("error advancing group counter: %w", err)
	}

	return seq, nil
}
