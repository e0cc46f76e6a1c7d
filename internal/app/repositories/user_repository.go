package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/dberrors"
)

const userColumns = `id, name, email, mobile_no, university_id, password, role,
	faculty, department, program, group_name, year, semester, day_type,
	created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.MobileNo,
		&user.UniversityID,
		&user.Password,
		&user.Role,
		&user.Faculty,
		&user.Department,
		&user.Program,
		&user.GroupName,
		&user.Year,
		&user.Semester,
		&user.DayType,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, mobile_no, university_id, password, role,
			faculty, department, program, group_name, year, semester, day_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.MobileNo, user.UniversityID, user.Password,
		user.Role, user.Faculty, user.Department, user.Program,
		user.GroupName, user.Year, user.Semester, user.DayType,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmailOrUniversityID retrieves a user by email or university identifier
func (r *UserRepository) GetByEmailOrUniversityID(ctx context.Context, email, universityID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR university_id = $2`

	user, err := scanUser(r.db.QueryRow(ctx, query, email, universityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// ExistsByEmailOrUniversityID checks if a user exists with the given email or university ID
func (r *UserRepository) ExistsByEmailOrUniversityID(ctx context.Context, email, universityID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR university_id = $2)`,
		email, universityID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves a page of users ordered by creation time
func (r *UserRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	return collectUsers(rows)
}

// CountAll returns the total number of users
func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// GetByRole retrieves all users with a given role
func (r *UserRepository) GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users by role: %w", err)
	}

	return collectUsers(rows)
}

// GetStudentsByGroup retrieves all student users whose cohort label equals
// groupName. This is the recipient set for timetable change notifications.
func (r *UserRepository) GetStudentsByGroup(ctx context.Context, groupName string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 AND group_name = $2 ORDER BY id`

	rows, err := r.db.Query(ctx, query, models.RoleStudent, groupName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by group: %w", err)
	}

	return collectUsers(rows)
}
