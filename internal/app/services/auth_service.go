package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/auth"
	"github.com/evren/schoolhub/internal/pkg/logger"
)

// AuthService handles staff authentication.
type AuthService struct {
	staffRepo  *repositories.StaffRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service.
func NewAuthService(
	staffRepo *repositories.StaffRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a token pair. An unknown email and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up staff: %w", err)
	}

	if !staff.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(staff.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, staff.ID, staff.Email, string(staff.Role))
}

// RefreshToken exchanges a valid refresh token for a new pair. The used
// token is revoked so each refresh token works once.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	staffID, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error looking up staff: %w", err)
	}

	if !staff.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		logger.Warn().Err(err).Msg("Failed to revoke used refresh token")
	}

	return s.issueTokens(ctx, staff.ID, staff.Email, string(staff.Role))
}

func (s *AuthService) issueTokens(ctx context.Context, staffID int64, email, role string) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(staffID, email, role)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, staffID, s.jwtService.RefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
