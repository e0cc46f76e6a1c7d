package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

// GroupBatchSize is the maximum number of students sharing one group name.
const GroupBatchSize = 10

// CohortAttributes are the enrollment attributes a group name is derived
// from. All of them are mandatory for student registrations.
type CohortAttributes struct {
	Year       int
	Semester   int
	DayType    models.DayType
	Department string
}

// DepartmentCode derives the group-name token from a department name: the
// first word, upper-cased ("Computing CS" -> "COMPUTING").
func DepartmentCode(department string) (string, error) {
	fields := strings.Fields(department)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: department name is empty", apperrors.ErrValidationFailed)
	}
	return strings.ToUpper(fields[0]), nil
}

// ComputeGroupName composes the cohort label for a new student enrollment
// given the number of students already assigned for the same cohort key.
// Students are batched in groups of GroupBatchSize, so the label is shared
// by up to GroupBatchSize students; batch numbering starts at 1.
func ComputeGroupName(attrs CohortAttributes, existingStudentCount int64) (string, error) {
	if err := attrs.validate(); err != nil {
		return "", err
	}

	deptCode, err := DepartmentCode(attrs.Department)
	if err != nil {
		return "", err
	}

	batch := existingStudentCount/GroupBatchSize + 1

	return fmt.Sprintf("Y%d.S%d.%s.%s.%d",
		attrs.Year, attrs.Semester, attrs.DayType, deptCode, batch), nil
}

func (a CohortAttributes) validate() error {
	if a.Year <= 0 {
		return fmt.Errorf("%w: year is required for students", apperrors.ErrValidationFailed)
	}
	if a.Semester <= 0 {
		return fmt.Errorf("%w: semester is required for students", apperrors.ErrValidationFailed)
	}
	if !a.DayType.Valid() {
		return fmt.Errorf("%w: day type is required for students", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(a.Department) == "" {
		return fmt.Errorf("%w: department is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CohortCounter advances the per-cohort enrollment sequence. Next returns the
// new sequence value; the first enrollment for a key observes 1.
type CohortCounter interface {
	Next(ctx context.Context, year, semester int, dayType models.DayType, deptCode string) (int64, error)
}

// CohortService assigns group names to new student enrollments. The label is
// computed once at registration and never rebalanced afterwards.
type CohortService struct {
	counters CohortCounter
}

// NewCohortService creates a new cohort service
func NewCohortService(counters CohortCounter) *CohortService {
	return &CohortService{
		counters: counters,
	}
}

// AssignCohort computes the group name for a new student enrollment. The
// sequence increment is atomic per cohort key, so concurrent registrations
// observe distinct counts.
func (s *CohortService) AssignCohort(ctx context.Context, attrs CohortAttributes) (string, error) {
	if err := attrs.validate(); err != nil {
		return "", err
	}

	deptCode, err := DepartmentCode(attrs.Department)
	if err != nil {
		return "", err
	}

	seq, err := s.counters.Next(ctx, attrs.Year, attrs.Semester, attrs.DayType, deptCode)
	if err != nil {
		return "", fmt.Errorf("error advancing cohort counter: %w", err)
	}

	// seq counts this enrollment; the label formula takes the count before it.
	return ComputeGroupName(attrs, seq-1)
}
