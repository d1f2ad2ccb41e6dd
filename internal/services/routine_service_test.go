package services

import (
	"context"
	"testing"

	"tripmate/internal/models"
)

func TestRoutineCreateItemValidatesCron(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_routine.db")
	defer cleanup()

	service := NewRoutineService(db)
	ctx := context.Background()

	if _, err := service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{
		Title:        "Morning stretch",
		ReminderCron: "not a cron",
	}); err == nil {
		t.Error("Expected error for invalid cron expression")
	}

	item, err := service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{
		Title:        "Morning stretch",
		ReminderCron: "0 7 * * *",
	})
	if err != nil {
		t.Fatalf("Failed to create routine item: %v", err)
	}
	if !item.IsDaily {
		t.Error("Expected isDaily to default to true")
	}
}

func TestRoutineCreateItemRequiresTitle(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_routine.db")
	defer cleanup()

	service := NewRoutineService(db)
	if _, err := service.CreateItem(context.Background(), "u1", models.CreateRoutineItemRequest{}); err == nil {
		t.Error("Expected error for missing title")
	}
}

func TestRoutineMarkDoneUpserts(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_routine.db")
	defer cleanup()

	service := NewRoutineService(db)
	ctx := context.Background()

	item, err := service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{Title: "Drink water"})
	if err != nil {
		t.Fatalf("Failed to create routine item: %v", err)
	}

	if _, err := service.MarkDone(ctx, "u1", item.ID, true); err != nil {
		t.Fatalf("Failed to mark done: %v", err)
	}
	// Marking again for the same day must update in place, not duplicate
	if _, err := service.MarkDone(ctx, "u1", item.ID, false); err != nil {
		t.Fatalf("Failed to re-mark: %v", err)
	}

	checks, err := service.ChecksForDate(ctx, "u1", todayDate())
	if err != nil {
		t.Fatalf("Failed to list checks: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("Expected 1 check after upsert, got %d", len(checks))
	}
	if checks[0].Done {
		t.Error("Expected the re-mark to flip done to false")
	}
}

func TestRoutineMarkDoneChecksOwnership(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_routine.db")
	defer cleanup()

	service := NewRoutineService(db)
	ctx := context.Background()

	item, err := service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{Title: "Journal"})
	if err != nil {
		t.Fatalf("Failed to create routine item: %v", err)
	}

	if _, err := service.MarkDone(ctx, "u2", item.ID, true); err == nil {
		t.Error("Expected error when marking another user's item")
	}
	if _, err := service.MarkDone(ctx, "u1", "missing-id", true); err == nil {
		t.Error("Expected error for unknown item")
	}
}

func TestRoutineCompletionForDate(t *testing.T) {
	db, cleanup := setupTestDB(t, "test_routine.db")
	defer cleanup()

	service := NewRoutineService(db)
	ctx := context.Background()

	notDaily := false
	a, _ := service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{Title: "Stretch"})
	service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{Title: "Walk"})
	service.CreateItem(ctx, "u1", models.CreateRoutineItemRequest{Title: "Visa run", IsDaily: &notDaily})

	if _, err := service.MarkDone(ctx, "u1", a.ID, true); err != nil {
		t.Fatalf("Failed to mark done: %v", err)
	}

	completion, err := service.CompletionForDate(ctx, "u1", todayDate())
	if err != nil {
		t.Fatalf("Failed to compute completion: %v", err)
	}
	if completion != "1/2" {
		t.Errorf("Expected 1/2 (non-daily items excluded), got %s", completion)
	}
}
