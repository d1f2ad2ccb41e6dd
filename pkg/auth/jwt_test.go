package auth

import (
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("travel123secure")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	ok, err := VerifyPassword(hash, "travel123secure")
	if err != nil {
		t.Fatalf("Failed to verify password: %v", err)
	}
	if !ok {
		t.Error("Expected correct password to verify")
	}

	ok, err = VerifyPassword(hash, "wrongpassword1")
	if err != nil {
		t.Fatalf("Failed to verify wrong password: %v", err)
	}
	if ok {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestVerifyPasswordRejectsBadFormat(t *testing.T) {
	if _, err := VerifyPassword("not-a-hash", "whatever"); err == nil {
		t.Error("Expected error for malformed hash")
	}
	if _, err := VerifyPassword("argon2id$only-one-part", "whatever"); err == nil {
		t.Error("Expected error for missing hash part")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
		{"goodpass1", true},
	}

	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.valid && err != nil {
			t.Errorf("Expected %q to be valid, got %v", tc.password, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("Expected %q to be rejected", tc.password)
		}
	}
}

func TestGenerateAndVerifyTokens(t *testing.T) {
	jwtAuth, err := NewJWTAuth("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("Failed to create JWT auth: %v", err)
	}

	access, refresh, err := jwtAuth.GenerateTokens("user-1", "me@example.com", "admin")
	if err != nil {
		t.Fatalf("Failed to generate tokens: %v", err)
	}

	user, err := jwtAuth.VerifyAccessToken(access)
	if err != nil {
		t.Fatalf("Failed to verify access token: %v", err)
	}
	if user.ID != "user-1" || user.Email != "me@example.com" || user.Role != "admin" {
		t.Errorf("Unexpected user from token: %+v", user)
	}

	claims, err := jwtAuth.VerifyRefreshToken(refresh)
	if err != nil {
		t.Fatalf("Failed to verify refresh token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Unexpected refresh claims: %+v", claims)
	}
}

func TestVerifyRejectsExpiredAndForeignTokens(t *testing.T) {
	shortLived, _ := NewJWTAuth("test-secret-key", time.Nanosecond, time.Nanosecond)
	access, _, err := shortLived.GenerateTokens("user-1", "me@example.com", "user")
	if err != nil {
		t.Fatalf("Failed to generate tokens: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := shortLived.VerifyAccessToken(access); err == nil {
		t.Error("Expected expired token to be rejected")
	}

	issuer, _ := NewJWTAuth("secret-a", 15*time.Minute, time.Hour)
	verifier, _ := NewJWTAuth("secret-b", 15*time.Minute, time.Hour)
	access, _, _ = issuer.GenerateTokens("user-1", "me@example.com", "user")
	if _, err := verifier.VerifyAccessToken(access); err == nil {
		t.Error("Expected token signed with a different secret to be rejected")
	}
}

func TestExtractToken(t *testing.T) {
	token, err := ExtractToken("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Errorf("Expected abc123, got %q (%v)", token, err)
	}

	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer "} {
		if _, err := ExtractToken(header); err == nil {
			t.Errorf("Expected error for header %q", header)
		}
	}
}

func TestNewJWTAuthRequiresSecret(t *testing.T) {
	if _, err := NewJWTAuth("", 0, 0); err == nil {
		t.Error("Expected error for empty secret")
	}

	jwtAuth, err := NewJWTAuth("secret", 0, 0)
	if err != nil {
		t.Fatalf("Failed to create JWT auth: %v", err)
	}
	if jwtAuth.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("Expected default access expiry, got %v", jwtAuth.AccessTokenExpiry)
	}
}
