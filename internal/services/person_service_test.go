package services

import (
	"context"
	"testing"

	"tripmate/internal/models"
)

func TestPersonCreateRequiresName(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_people.db")
	defer cleanup()

	service := NewPersonService(db)
	if _, err := service.Create(context.Background(), "u1", models.CreatePersonRequest{}); err == nil {
		t.Error("Expected error for missing name")
	}
}

func TestPersonSearch(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_people.db")
	defer cleanup()

	service := NewPersonService(db)
	ctx := context.Background()

	seed := []models.CreatePersonRequest{
		{Name: "Rajesh", Phone: "9876543210", WhereMet: "Delhi"},
		{Name: "Sarah", WhereMet: "Pune hostel"},
		{Name: "Ravi", WhereMet: "trek near Pune"},
	}
	for _, req := range seed {
		if _, err := service.Create(ctx, "u1", req); err != nil {
			t.Fatalf("Failed to seed person: %v", err)
		}
	}

	results, err := service.Search(ctx, "u1", "pune")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 matches for pune, got %d", len(results))
	}

	results, err = service.Search(ctx, "u1", "rajesh")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Rajesh" {
		t.Errorf("Expected Rajesh, got %+v", results)
	}

	all, err := service.List(ctx, "u1")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 people, got %d", len(all))
	}
}
