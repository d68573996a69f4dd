package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAdminGateFromEnvRequiresCredentials(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("JWT_SECRET", "secret-for-test")

	if gate, err := NewAdminGateFromEnv(); err == nil || gate != nil {
		t.Fatalf("expected error when ADMIN_PASSWORD is empty, got gate=%v err=%v", gate, err)
	}

	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "")

	if gate, err := NewAdminGateFromEnv(); err == nil || gate != nil {
		t.Fatalf("expected error when JWT_SECRET is empty, got gate=%v err=%v", gate, err)
	}
}

func TestNewAdminGateFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "secret-for-test")
	t.Setenv("JWT_ISSUER", "")

	gate, err := NewAdminGateFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gate.issuer != "trustgate" {
		t.Fatalf("expected default issuer trustgate, got %q", gate.issuer)
	}
	if gate.ttl != 12*time.Hour {
		t.Fatalf("expected default ttl 12h, got %s", gate.ttl)
	}
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	gate := NewAdminGate("hunter2", "secret-for-test", "test-issuer", time.Hour)

	token, err := gate.Login("hunter2")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if err := gate.Verify(token); err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	gate := NewAdminGate("hunter2", "secret-for-test", "test-issuer", time.Hour)

	if _, err := gate.Login("wrong"); !errors.Is(err, ErrBadPassword) {
		t.Fatalf("expected ErrBadPassword, got %v", err)
	}
	if _, err := gate.Login(""); !errors.Is(err, ErrBadPassword) {
		t.Fatalf("expected ErrBadPassword for empty password, got %v", err)
	}
}

func TestVerifyRejectsForeignAndExpiredTokens(t *testing.T) {
	gate := NewAdminGate("hunter2", "secret-for-test", "test-issuer", time.Hour)

	otherGate := NewAdminGate("hunter2", "different-secret", "test-issuer", time.Hour)
	foreign, err := otherGate.Login("hunter2")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if err := gate.Verify(foreign); err == nil {
		t.Fatalf("expected verify to reject a token signed with another secret")
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": RoleAdmin,
		"iss":  "test-issuer",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("secret-for-test"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	if err := gate.Verify(expiredString); err == nil {
		t.Fatalf("expected verify to reject an expired token")
	}
}

func TestVerifyRejectsMissingAdminRole(t *testing.T) {
	gate := NewAdminGate("hunter2", "secret-for-test", "test-issuer", time.Hour)

	viewer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "viewer",
		"role": "viewer",
		"iss":  "test-issuer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	viewerString, err := viewer.SignedString([]byte("secret-for-test"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	if err := gate.Verify(viewerString); err == nil {
		t.Fatalf("expected verify to reject a non-admin token")
	}
}
