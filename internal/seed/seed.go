package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/app/repositories"
	"github.com/sachin/campushub/internal/pkg/apperrors"
	"github.com/sachin/campushub/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
// Registration is admin-gated, so a fresh deployment needs one to bootstrap.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	hashedPassword, err := auth.HashPassword("admin12345")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "System Administrator",
		Email:        "admin@campushub.app",
		MobileNo:     "0700000000",
		UniversityID: "ADMIN0001",
		Password:     hashedPassword,
		Role:         models.RoleAdmin,
		Faculty:      "Administration",
		Department:   "Administration",
		Program:      "N/A",
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			lgr.Debug().Msg("Default admin already exists, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
