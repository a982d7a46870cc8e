package httpapi

import (
	"testing"
	"time"

	"servix/backend/internal/domain"
)

func TestLoginIssuesParsableToken(t *testing.T) {
	manager := NewAuthManager("test-secret", time.Hour)

	resp, err := manager.Login(domain.LoginRequest{
		Username: "caja1",
		Password: "caja123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Role != "cashier" {
		t.Fatalf("expected cashier role, got %q", resp.Role)
	}

	actor, err := manager.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if actor.Username != "caja1" || actor.Role != "cashier" {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestLoginNormalizesUsername(t *testing.T) {
	manager := NewAuthManager("test-secret", time.Hour)

	if _, err := manager.Login(domain.LoginRequest{Username: "  Admin ", Password: "admin123"}); err != nil {
		t.Fatalf("login with padded username failed: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	manager := NewAuthManager("test-secret", time.Hour)

	for _, req := range []domain.LoginRequest{
		{Username: "caja1", Password: "wrong"},
		{Username: "nobody", Password: "caja123"},
		{Username: "caja1", Password: ""},
	} {
		if _, err := manager.Login(req); err == nil {
			t.Fatalf("expected login to fail for %+v", req)
		}
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	manager := NewAuthManager("test-secret", time.Hour)
	other := NewAuthManager("another-secret", time.Hour)

	resp, err := other.Login(domain.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := manager.ParseToken(resp.AccessToken); err == nil {
		t.Fatalf("expected token signed with a different secret to be rejected")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	manager := NewAuthManager("test-secret", time.Hour)

	token, err := manager.sign("caja1", "cashier", time.Now().UTC().Add(-time.Minute))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := manager.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	manager := NewAuthManager("test-secret", time.Hour)

	if _, err := manager.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("expected garbage token to be rejected")
	}
}
