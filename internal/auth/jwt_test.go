package auth

import (
	"testing"
	"time"

	"github.com/erazemk/fastenerlib/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}
}

func TestIssueAndValidate(t *testing.T) {
	iss := NewIssuer("test-secret-key", 0)

	token, issued, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := iss.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("expected user_id 1, got %d", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username 'admin', got %q", claims.Username)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("expected role 'admin', got %q", claims.Role)
	}
	if claims.ID != issued.ID || claims.ID == "" {
		t.Errorf("token id = %q, issued %q", claims.ID, issued.ID)
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	iss := NewIssuer("s", 0)
	_, a, _ := iss.Issue(testUser())
	_, b, _ := iss.Issue(testUser())
	if a.ID == b.ID {
		t.Error("expected distinct token ids")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, _, _ := NewIssuer("secret1", 0).Issue(testUser())

	if _, err := NewIssuer("secret2", 0).Validate(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateInvalid(t *testing.T) {
	if _, err := NewIssuer("secret", 0).Validate("not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestValidateExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	start := time.Now()
	iss.now = func() time.Time { return start }
	token, _, _ := iss.Issue(testUser())

	iss.now = func() time.Time { return start.Add(2 * time.Hour) }
	if _, err := iss.Validate(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTokenExpiry(t *testing.T) {
	iss := NewIssuer("test", 0)
	_, claims, _ := iss.Issue(testUser())

	diff := time.Now().Add(TokenExpiry).Sub(claims.ExpiresAt.Time)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
