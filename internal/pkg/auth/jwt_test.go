package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "schoolhub-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(42, "t@school.test", "TEACHER")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("GenerateTokenPair() returned empty tokens")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.StaffID != 42 {
		t.Errorf("StaffID = %d, want 42", claims.StaffID)
	}
	if claims.Email != "t@school.test" {
		t.Errorf("Email = %q, want %q", claims.Email, "t@school.test")
	}
	if claims.Role != "TEACHER" {
		t.Errorf("Role = %q, want %q", claims.Role, "TEACHER")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(1, "a@school.test", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(time.Hour)
	verifier := NewJWTService(JWTConfig{
		SecretKey:       "another-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "schoolhub-test",
	})

	accessToken, _, _, _, err := issuer.GenerateTokenPair(1, "a@school.test", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}

	if _, err := verifier.ValidateToken(accessToken); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestRefreshTokensAreOpaqueAndUnique(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, first, _, _, err := svc.GenerateTokenPair(1, "a@school.test", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}
	_, second, _, _, err := svc.GenerateTokenPair(1, "a@school.test", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}

	if first == second {
		t.Error("refresh tokens are not unique across issues")
	}
	if _, err := svc.ValidateToken(first); err == nil {
		t.Error("refresh token validated as a JWT; it should be opaque")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "empty header", wantErr: ErrInvalidFormat},
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractBearerToken() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "S3cret!pass") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}
