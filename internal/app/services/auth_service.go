package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/models/dto"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/auth"
	"github.com/sachin/campushub/internal/pkg/logger"
	"github.com/sachin/campushub/internal/pkg/validation"
)

// UserStore is the persistence surface the auth service registers and looks
// up accounts through.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmailOrUniversityID(ctx context.Context, email, universityID string) (*models.User, error)
	ExistsByEmailOrUniversityID(ctx context.Context, email, universityID string) (bool, error)
}

// CohortAssigner computes the group name for a new student enrollment
type CohortAssigner interface {
	AssignCohort(ctx context.Context, attrs CohortAttributes) (string, error)
}

// AuthService handles account registration and login. Registration is an
// administrative operation; it is gated at the route layer.
type AuthService struct {
	users      UserStore
	cohorts    CohortAssigner
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(users UserStore, cohorts CohortAssigner, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		cohorts:    cohorts,
		jwtService: jwtService,
	}
}

// Register creates a new account. Students additionally require year,
// semester and day type, from which a cohort group name is assigned; those
// fields must be absent for other roles.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmailOrUniversityID(ctx, req.Email, req.UniversityID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		MobileNo:     req.MobileNo,
		UniversityID: req.UniversityID,
		Password:     hashedPassword,
		Role:         req.Role,
		Faculty:      req.Faculty,
		Department:   req.Department,
		Program:      req.Program,
	}

	if req.Role == models.RoleStudent {
		groupName, err := s.cohorts.AssignCohort(ctx, CohortAttributes{
			Year:       *req.Year,
			Semester:   *req.Semester,
			DayType:    *req.DayType,
			Department: req.Department,
		})
		if err != nil {
			return nil, err
		}

		user.GroupName = &groupName
		user.Year = req.Year
		user.Semester = req.Semester
		user.DayType = req.DayType
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return user, nil
}

// Login verifies credentials and issues an access token. The account is
// located by email or university ID, whichever the request carries.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error) {
	if req.Email == "" && req.UniversityID == "" {
		return nil, nil, fmt.Errorf("%w: email or university ID is required", apperrors.ErrValidationFailed)
	}

	user, err := s.users.GetByEmailOrUniversityID(ctx, req.Email, req.UniversityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, user, nil
}

func validateRegistration(req *dto.RegisterRequest) error {
	if !req.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.ErrInvalidEmail
	}
	if !validation.IsValidMobileNo(req.MobileNo) {
		return apperrors.ErrInvalidMobileNo
	}
	if !validation.IsValidPassword(req.Password) {
		return apperrors.ErrInvalidPassword
	}

	if req.Role == models.RoleStudent {
		if req.Year == nil || req.Semester == nil || req.DayType == nil {
			return fmt.Errorf("%w: year, semester and day type are required for students", apperrors.ErrValidationFailed)
		}
		if !req.DayType.Valid() {
			return fmt.Errorf("%w: day type must be WD or WE", apperrors.ErrValidationFailed)
		}
		return nil
	}

	// Cohort attributes belong to students only.
	if req.Year != nil || req.Semester != nil || req.DayType != nil {
		return fmt.Errorf("%w: year, semester and day type are only valid for students", apperrors.ErrValidationFailed)
	}

	return nil
}
