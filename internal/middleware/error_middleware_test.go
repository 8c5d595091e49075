package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return rec.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"project not found", apperrors.ErrProjectNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"support ticket not found", apperrors.ErrSupportTicketNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"duplicate roll number", apperrors.ErrRollNumberAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"validation failure", apperrors.NewValidationError("invalid event category: party"), 400, dto.ErrorCodeValidationFailed},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"disabled account", apperrors.ErrAccountDisabled, 401, dto.ErrorCodeUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"revoked refresh token", apperrors.ErrTokenRevoked, 401, dto.ErrorCodeInvalidToken},
		{"unknown infra error", errors.New("pq: connection refused"), 500, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runHandleAPIError(t, tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body.Error == nil {
				t.Fatal("error envelope missing error detail")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
			if body.Data != nil {
				t.Error("error envelope carries data")
			}
		})
	}
}

func TestHandleAPIErrorSurfacesValidationMessage(t *testing.T) {
	_, body := runHandleAPIError(t, apperrors.NewValidationError("endDate must not be before startDate"))

	if body.Error.Message != "endDate must not be before startDate" {
		t.Errorf("message = %q, want the validation detail", body.Error.Message)
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := runHandleAPIError(t, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	if body.Error.Message != "Internal server error" {
		t.Errorf("message = %q, internal details must not leak", body.Error.Message)
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), apperrors.ErrEventNotFound)

	status, body := runHandleAPIError(t, wrapped)
	if status != 404 {
		t.Errorf("status = %d, want 404 for a wrapped sentinel", status)
	}
	if body.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("code = %q, want %q", body.Error.Code, dto.ErrorCodeResourceNotFound)
	}
}
