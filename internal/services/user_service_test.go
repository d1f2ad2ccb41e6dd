package services

import (
	"context"
	"testing"
)

func TestUserFirstAccountBecomesAdmin(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_users.db")
	defer cleanup()

	service := NewUserService(db)
	ctx := context.Background()

	first, err := service.Create(ctx, "owner@example.com", "hash1")
	if err != nil {
		t.Fatalf("Failed to create first user: %v", err)
	}
	if first.Role != "admin" {
		t.Errorf("Expected first user to be admin, got %s", first.Role)
	}

	second, err := service.Create(ctx, "friend@example.com", "hash2")
	if err != nil {
		t.Fatalf("Failed to create second user: %v", err)
	}
	if second.Role != "user" {
		t.Errorf("Expected second user to be user, got %s", second.Role)
	}
}

func TestUserEmailNormalizedAndUnique(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_users.db")
	defer cleanup()

	service := NewUserService(db)
	ctx := context.Background()

	user, err := service.Create(ctx, "  Traveller@Example.COM ", "hash")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.Email != "traveller@example.com" {
		t.Errorf("Expected lowercased trimmed email, got %q", user.Email)
	}

	if _, err := service.Create(ctx, "traveller@example.com", "other"); err == nil {
		t.Error("Expected error for duplicate email")
	}

	fetched, err := service.GetByEmail(ctx, "TRAVELLER@example.com")
	if err != nil {
		t.Fatalf("Failed to fetch by email: %v", err)
	}
	if fetched.ID != user.ID {
		t.Error("Expected case-insensitive email lookup to return the same user")
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_users.db")
	defer cleanup()

	service := NewUserService(db)
	if _, err := service.GetByID(context.Background(), "nope"); err == nil {
		t.Error("Expected error for unknown user id")
	}
}
