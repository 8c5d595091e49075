package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/logger"
)

// notFoundErrors maps every per-entity not-found sentinel to one 404 shape.
var notFoundErrors = []error{
	apperrors.ErrResourceNotFound,
	apperrors.ErrStaffNotFound,
	apperrors.ErrStudentNotFound,
	apperrors.ErrEventNotFound,
	apperrors.ErrAchievementNotFound,
	apperrors.ErrProjectNotFound,
	apperrors.ErrSalaryTemplateNotFound,
	apperrors.ErrTransportFormNotFound,
	apperrors.ErrLeaveRequestNotFound,
	apperrors.ErrEnquiryNotFound,
	apperrors.ErrSupportTicketNotFound,
	apperrors.ErrDisciplinaryActionNotFound,
}

// conflictErrors map to 409.
var conflictErrors = []error{
	apperrors.ErrConflict,
	apperrors.ErrEmailAlreadyExists,
	apperrors.ErrRollNumberAlreadyExists,
}

func errorMessage(err error, fallback string) string {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// HandleAPIError translates service errors into the uniform error envelope.
// Anything outside the known taxonomy is logged and reported as a plain 500;
// internal details never reach the client.
func HandleAPIError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, sentinel.Error()))))
			return
		}
	}

	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusConflict, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, sentinel.Error()))))
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed"))))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeForbidden, errorMessage(err, "Permission denied"))))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Account is disabled")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorEnvelope(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
