package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/evren/schoolhub/internal/app/models"
	appRepos "github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

const defaultAdminEmail = "admin@schoolhub.dev"

// CreateDefaultData creates the default admin account if it doesn't exist, so
// a fresh deployment has a way to log in and create the rest of the staff.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	staffRepo := appRepos.NewStaffRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	_, err := staffRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrStaffNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin account exists")
		return err
	}

	lgr.Info().Msg("Creating default admin account...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.Staff{
		Email:        defaultAdminEmail,
		PasswordHash: string(hashedPassword),
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         appModels.RoleAdmin,
		IsActive:     true,
	}

	if err := staffRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin account created successfully")
	return nil
}
