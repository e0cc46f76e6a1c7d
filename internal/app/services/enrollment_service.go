package services

import (
	"context"
	"fmt"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/logger"
)

// EnrollmentStore is the persistence surface for course enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

// StudentDirectory resolves the account an enrollment refers to
type StudentDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// CourseCatalog resolves the course an enrollment refers to
type CourseCatalog interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentService links students to catalog courses. A student holds at
// most one enrollment per course.
type EnrollmentService struct {
	enrollments EnrollmentStore
	users       StudentDirectory
	courses     CourseCatalog
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollments EnrollmentStore, users StudentDirectory, courses CourseCatalog) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		users:       users,
		courses:     courses,
	}
}

// EnrollStudent enrolls a student in a course. The account must exist and
// carry the student role, and the course must exist in the catalog.
func (s *EnrollmentService) EnrollStudent(ctx context.Context, req *dto.EnrollRequest) (*models.Enrollment, error) {
	student, err := s.users.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, fmt.Errorf("%w: user %d is not a student", apperrors.ErrValidationFailed, req.StudentID)
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	enrollment.Student = student
	enrollment.Course = course

	logger.Info().
		Int64("studentId", req.StudentID).
		Str("courseCode", course.Code).
		Msg("Student enrolled")

	return enrollment, nil
}

// GetStudentEnrollments retrieves a student's enrollments with the course
// populated
func (s *EnrollmentService) GetStudentEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return s.enrollments.ListByStudent(ctx, studentID)
}

// GetAllEnrollments retrieves every enrollment with the student and course
// populated
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollments.GetAll(ctx)
}

// UnenrollStudent removes an enrollment
func (s *EnrollmentService) UnenrollStudent(ctx context.Context, id int64) error {
	return s.enrollments.Delete(ctx, id)
}
