package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/auth"
)

type fakeUserStore struct {
	nextID int64
	users  []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserStore) GetByEmailOrUniversityID(_ context.Context, email, universityID string) (*models.User, error) {
	for _, u := range f.users {
		if (email != "" && u.Email == email) || (universityID != "" && u.UniversityID == universityID) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByEmailOrUniversityID(ctx context.Context, email, universityID string) (bool, error) {
	_, err := f.GetByEmailOrUniversityID(ctx, email, universityID)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type fakeAssigner struct {
	group string
	calls int
}

func (f *fakeAssigner) AssignCohort(_ context.Context, _ CohortAttributes) (string, error) {
	f.calls++
	return f.group, nil
}

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeAssigner) {
	store := &fakeUserStore{}
	assigner := &fakeAssigner{group: "Y1.S2.WE.COMPUTING.1"}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushub-test",
	})
	return NewAuthService(store, assigner, jwtService), store, assigner
}

func studentRegisterReq() *dto.RegisterRequest {
	year, semester := 1, 2
	dayType := models.DayTypeWeekend
	return &dto.RegisterRequest{
		Name:         "Jane Silva",
		Email:        "jane@campus.edu",
		MobileNo:     "0771234567",
		UniversityID: "IT21430432",
		Password:     "s3curePass",
		Role:         models.RoleStudent,
		Faculty:      "Computing",
		Department:   "Computing CS",
		Program:      "BSc (Hons) in IT",
		Year:         &year,
		Semester:     &semester,
		DayType:      &dayType,
	}
}

func TestRegisterStudentAssignsCohort(t *testing.T) {
	svc, _, assigner := newAuthFixture()

	user, err := svc.Register(context.Background(), studentRegisterReq())
	require.NoError(t, err)

	assert.Equal(t, 1, assigner.calls)
	require.NotNil(t, user.GroupName)
	assert.Equal(t, "Y1.S2.WE.COMPUTING.1", *user.GroupName)
	assert.NotEqual(t, "s3curePass", user.Password, "password must be stored hashed")
}

func TestRegisterStudentRequiresCohortAttributes(t *testing.T) {
	svc, _, assigner := newAuthFixture()

	req := studentRegisterReq()
	req.Year = nil

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Zero(t, assigner.calls)
}

func TestRegisterFacultyRejectsCohortAttributes(t *testing.T) {
	svc, _, assigner := newAuthFixture()

	req := studentRegisterReq()
	req.Role = models.RoleFaculty

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Zero(t, assigner.calls)
}

func TestRegisterFaculty(t *testing.T) {
	svc, _, assigner := newAuthFixture()

	req := studentRegisterReq()
	req.Role = models.RoleFaculty
	req.Year, req.Semester, req.DayType = nil, nil, nil

	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, user.GroupName)
	assert.Zero(t, assigner.calls)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.RegisterRequest)
		wantErr error
	}{
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, apperrors.ErrInvalidEmail},
		{"bad mobile", func(r *dto.RegisterRequest) { r.MobileNo = "123" }, apperrors.ErrInvalidMobileNo},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }, apperrors.ErrInvalidPassword},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "GUEST" }, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAuthFixture()
			req := studentRegisterReq()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, studentRegisterReq())
	require.NoError(t, err)

	_, err = svc.Register(ctx, studentRegisterReq())
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, studentRegisterReq())
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "jane@campus.edu",
		Password: "s3curePass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, "jane@campus.edu", user.Email)

	// University ID works as the identifier too.
	_, _, err = svc.Login(ctx, &dto.LoginRequest{
		UniversityID: "IT21430432",
		Password:     "s3curePass",
	})
	assert.NoError(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, studentRegisterReq())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@campus.edu", Password: "wrongPass1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@campus.edu", Password: "s3curePass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Password: "s3curePass"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
