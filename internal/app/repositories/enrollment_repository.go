package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for course enrollments.
// Listings join the related course (and student for admin views) so callers
// get populated records in one round trip.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment; a student may enroll in a course only once
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

func scanEnrollmentWithCourse(rows pgx.Rows) (*models.Enrollment, error) {
	var e models.Enrollment
	var c models.Course
	err := rows.Scan(
		&e.ID,
		&e.StudentID,
		&e.CourseID,
		&e.CreatedAt,
		&c.ID,
		&c.Name,
		&c.Code,
		&c.Description,
		&c.Program,
		&c.Year,
		&c.Semester,
		&c.Credits,
	)
	if err != nil {
		return nil, err
	}
	e.Course = &c
	return &e, nil
}

// ListByStudent retrieves a student's enrollments with the course populated
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
			c.id, c.name, c.code, c.description, c.program, c.year, c.semester, c.credits
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY c.code
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments for student: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollmentWithCourse(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetAll retrieves every enrollment with both the student and course populated
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
			u.id, u.name, u.email, u.university_id, u.role, u.group_name,
			c.id, c.name, c.code, c.description, c.program, c.year, c.semester, c.credits
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var u models.User
		var c models.Course
		err := rows.Scan(
			&e.ID,
			&e.StudentID,
			&e.CourseID,
			&e.CreatedAt,
			&u.ID,
			&u.Name,
			&u.Email,
			&u.UniversityID,
			&u.Role,
			&u.GroupName,
			&c.ID,
			&c.Name,
			&c.Code,
			&c.Description,
			&c.Program,
			&c.Year,
			&c.Semester,
			&c.Credits,
		)
		if err != nil {
			return nil, err
		}
		e.Student = &u
		e.Course = &c
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
