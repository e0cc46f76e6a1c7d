package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/pkg/apperrors"
)

type fakeEnrollmentStore struct {
	nextID      int64
	enrollments map[int64]*models.Enrollment
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{enrollments: make(map[int64]*models.Enrollment)}
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	for _, e := range f.enrollments {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	f.nextID++
	enrollment.ID = f.nextID
	copied := *enrollment
	f.enrollments[enrollment.ID] = &copied
	return nil
}

func (f *fakeEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.enrollments, id)
	return nil
}

type fakeStudentDirectory struct {
	users map[int64]*models.User
}

func (f *fakeStudentDirectory) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeCourseCatalog struct {
	courses map[int64]*models.Course
}

func (f *fakeCourseCatalog) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func newEnrollmentFixture() (*EnrollmentService, *fakeEnrollmentStore) {
	store := newFakeEnrollmentStore()
	users := &fakeStudentDirectory{users: map[int64]*models.User{
		7: {ID: 7, Name: "Jane Silva", Role: models.RoleStudent},
		8: {ID: 8, Name: "Nuwan Perera", Role: models.RoleStudent},
		9: {ID: 9, Name: "Dr. Fernando", Role: models.RoleFaculty},
	}}
	courses := &fakeCourseCatalog{courses: map[int64]*models.Course{
		3: {ID: 3, Name: "Data Structures", Code: "IT2030"},
		4: {ID: 4, Name: "Databases", Code: "IT2040"},
	}}
	return NewEnrollmentService(store, users, courses), store
}

func TestEnrollStudent(t *testing.T) {
	svc, store := newEnrollmentFixture()

	enrollment, err := svc.EnrollStudent(context.Background(), &dto.EnrollRequest{StudentID: 7, CourseID: 3})
	require.NoError(t, err)

	assert.NotZero(t, enrollment.ID)
	require.NotNil(t, enrollment.Course)
	assert.Equal(t, "IT2030", enrollment.Course.Code)
	require.NotNil(t, enrollment.Student)
	assert.Equal(t, "Jane Silva", enrollment.Student.Name)
	assert.Len(t, store.enrollments, 1)
}

func TestEnrollStudentRejectsDuplicate(t *testing.T) {
	svc, _ := newEnrollmentFixture()
	ctx := context.Background()

	_, err := svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 3})
	require.NoError(t, err)

	_, err = svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 3})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	// A different course for the same student is fine.
	_, err = svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 4})
	assert.NoError(t, err)
}

func TestEnrollStudentRejectsNonStudent(t *testing.T) {
	svc, store := newEnrollmentFixture()

	_, err := svc.EnrollStudent(context.Background(), &dto.EnrollRequest{StudentID: 9, CourseID: 3})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.enrollments)
}

func TestEnrollStudentUnknownReferences(t *testing.T) {
	svc, _ := newEnrollmentFixture()
	ctx := context.Background()

	_, err := svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 99, CourseID: 3})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 99})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetStudentEnrollments(t *testing.T) {
	svc, _ := newEnrollmentFixture()
	ctx := context.Background()

	_, err := svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 3})
	require.NoError(t, err)
	_, err = svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 4})
	require.NoError(t, err)
	_, err = svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 8, CourseID: 3})
	require.NoError(t, err)

	mine, err := svc.GetStudentEnrollments(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.GetAllEnrollments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUnenrollStudent(t *testing.T) {
	svc, _ := newEnrollmentFixture()
	ctx := context.Background()

	enrollment, err := svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 3})
	require.NoError(t, err)

	require.NoError(t, svc.UnenrollStudent(ctx, enrollment.ID))
	assert.ErrorIs(t, svc.UnenrollStudent(ctx, enrollment.ID), apperrors.ErrEnrollmentNotFound)

	// The student can re-enroll after unenrolling.
	_, err = svc.EnrollStudent(ctx, &dto.EnrollRequest{StudentID: 7, CourseID: 3})
	assert.NoError(t, err)
}
