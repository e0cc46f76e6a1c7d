package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/dberrors"
)

// TimetableRepository handles database operations for cohort timetables.
// The day/session structure is stored as a JSONB column.
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
	}
}

func scanTimetable(row pgx.Row) (*models.Timetable, error) {
	var t models.Timetable
	var daysJSON []byte
	err := row.Scan(
		&t.ID,
		&t.GroupID,
		&t.Year,
		&t.Semester,
		&t.Program,
		&t.Type,
		&daysJSON,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(daysJSON) > 0 {
		if err := json.Unmarshal(daysJSON, &t.Days); err != nil {
			return nil, fmt.Errorf("error decoding timetable days: %w", err)
		}
	}

	return &t, nil
}

const timetableColumns = `id, group_id, year, semester, program, type, days, created_at, updated_at`

// Create inserts a new timetable; the group identifier must be unique
func (r *TimetableRepository) Create(ctx context.Context, timetable *models.Timetable) error {
	daysJSON, err := json.Marshal(timetable.Days)
	if err != nil {
		return fmt.Errorf("error encoding timetable days: %w", err)
	}

	query := `
		INSERT INTO timetables (group_id, year, semester, program, type, days)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		timetable.GroupID, timetable.Year, timetable.Semester,
		timetable.Program, timetable.Type, daysJSON,
	).Scan(&timetable.ID, &timetable.CreatedAt, &timetable.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrGroupExists
		}
		return fmt.Errorf("error creating timetable: %w", err)
	}

	return nil
}

// GetByGroupID retrieves the timetable for a cohort
func (r *TimetableRepository) GetByGroupID(ctx context.Context, groupID string) (*models.Timetable, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetables WHERE group_id = $1`

	timetable, err := scanTimetable(r.db.QueryRow(ctx, query, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableNotFound
		}
		return nil, fmt.Errorf("error retrieving timetable: %w", err)
	}

	return timetable, nil
}

// GetAll retrieves all timetables
func (r *TimetableRepository) GetAll(ctx context.Context) ([]*models.Timetable, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetables ORDER BY group_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetables: %w", err)
	}
	defer rows.Close()

	var timetables []*models.Timetable
	for rows.Next() {
		timetable, err := scanTimetable(rows)
		if err != nil {
			return nil, err
		}
		timetables = append(timetables, timetable)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timetables, nil
}

// Update replaces the stored fields of the timetable identified by group ID
func (r *TimetableRepository) Update(ctx context.Context, timetable *models.Timetable) error {
	daysJSON, err := json.Marshal(timetable.Days)
	if err != nil {
		return fmt.Errorf("error encoding timetable days: %w", err)
	}

	query := `
		UPDATE timetables
		SET year = $1, semester = $2, program = $3, type = $4, days = $5, updated_at = NOW()
		WHERE group_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		timetable.Year, timetable.Semester, timetable.Program,
		timetable.Type, daysJSON, timetable.GroupID)
	if err != nil {
		return fmt.Errorf("error updating timetable: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}

	return nil
}

// DeleteByGroupID removes the timetable for a cohort. Notifications already
// sent for past updates are left untouched.
func (r *TimetableRepository) DeleteByGroupID(ctx context.Context, groupID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM timetables WHERE group_id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("error deleting timetable: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}

	return nil
}
