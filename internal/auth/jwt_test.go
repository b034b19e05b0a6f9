package auth

import (
	"testing"

	"charaksamhita.org/qa-service/internal/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateSessionToken("user-abc")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	userID, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if userID != "user-abc" {
		t.Fatalf("expected user-abc, got %q", userID)
	}
}

func TestValidateSessionTokenRejectsTampering(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateSessionToken("user-abc")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateSessionToken(token + "x"); err == nil {
		t.Fatal("tampered token must not validate")
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, err := ValidateSessionToken(token); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	if _, err := ValidateSessionToken("not-a-token"); err == nil {
		t.Fatal("garbage must not validate")
	}
}
