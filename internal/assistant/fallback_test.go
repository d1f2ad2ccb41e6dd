package assistant

import (
	"context"
	"strings"
	"testing"
)

func TestFallbackPersonRule(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "add person Rajesh, phone 9876543210, met in Delhi")
	if !result.Success {
		t.Fatalf("Expected success, got failure: %s", result.Message)
	}
	if result.Message != "Added Rajesh to contacts" {
		t.Errorf("Unexpected message: %q", result.Message)
	}

	if len(store.people) != 1 {
		t.Fatalf("Expected 1 person, got %d", len(store.people))
	}
	p := store.people[0]
	if p.Name != "Rajesh" {
		t.Errorf("Expected name Rajesh, got %q", p.Name)
	}
	if p.Phone != "9876543210" {
		t.Errorf("Expected phone 9876543210, got %q", p.Phone)
	}
	if p.WhereMet != "Delhi" {
		t.Errorf("Expected whereMet Delhi, got %q", p.WhereMet)
	}
}

func TestFallbackPersonRequiresName(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	// Trigger phrase present but no extractable name; no other rule
	// matches either
	result := fb.Parse(context.Background(), "u1", "add person")
	if result.Success {
		t.Fatal("Expected failure when no name is extractable")
	}
	if len(store.people) != 0 {
		t.Errorf("Expected no person created, got %d", len(store.people))
	}
}

func TestFallbackExpenseDefaults(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	cmd := "expense 250 for lunch at street food"
	result := fb.Parse(context.Background(), "u1", cmd)
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}

	if len(store.expenses) != 1 {
		t.Fatalf("Expected 1 expense, got %d", len(store.expenses))
	}
	e := store.expenses[0]
	if e.Amount != 250 {
		t.Errorf("Expected amount 250, got %v", e.Amount)
	}
	// "lunch" is not a category keyword, so category stays misc
	if e.Category != "misc" {
		t.Errorf("Expected category misc, got %q", e.Category)
	}
	if e.Note != cmd {
		t.Errorf("Expected note to be the full command, got %q", e.Note)
	}
}

func TestFallbackExpenseCategoryKeyword(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "spent ₹120 on food")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if store.expenses[0].Category != "food" {
		t.Errorf("Expected category food, got %q", store.expenses[0].Category)
	}
	if !strings.Contains(result.Message, "120") {
		t.Errorf("Expected amount in message, got %q", result.Message)
	}
}

func TestFallbackWaterQuantity(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "water 500ml")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if store.water[0].QuantityMl != 500 {
		t.Errorf("Expected 500ml, got %d", store.water[0].QuantityMl)
	}
	if result.Message != "Logged 500ml water intake" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
}

func TestFallbackWaterDefaultGlass(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "had a glass of water")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if store.water[0].QuantityMl != 250 {
		t.Errorf("Expected default 250ml, got %d", store.water[0].QuantityMl)
	}
}

func TestFallbackMealPriority(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	// breakfast wins over lunch when both keywords appear
	result := fb.Parse(context.Background(), "u1", "had breakfast instead of lunch")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if store.meals[0].Meal != "breakfast" {
		t.Errorf("Expected breakfast, got %q", store.meals[0].Meal)
	}
	if result.Message != "Logged breakfast" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
}

func TestFallbackMealSnack(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "quick snack by the beach")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if store.meals[0].Meal != "snack" {
		t.Errorf("Expected snack, got %q", store.meals[0].Meal)
	}
}

func TestFallbackJournalEntry(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	cmd := "journal: sunrise at the fort was unreal"
	result := fb.Parse(context.Background(), "u1", cmd)
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if result.Message != "Added journal entry" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
	entry := store.journal[0]
	if entry.Title != "Quick Entry" {
		t.Errorf("Expected title Quick Entry, got %q", entry.Title)
	}
	if entry.Body != cmd {
		t.Errorf("Expected body to be the full command, got %q", entry.Body)
	}
}

func TestFallbackNotRecognized(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "hello there")
	if result.Success {
		t.Fatal("Expected failure for unrecognizable command")
	}
	want := "Command not recognized. Try: 'add person [name], phone [number]' or 'expense 100 for food'"
	if result.Message != want {
		t.Errorf("Expected guidance message, got %q", result.Message)
	}
}

func TestFallbackRuleOrder(t *testing.T) {
	store := &fakeStore{}
	fb := NewFallback(store)

	// Contains both "expense" and "journal"; the expense rule runs first
	result := fb.Parse(context.Background(), "u1", "expense 90 noted in journal")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if len(store.expenses) != 1 || len(store.journal) != 0 {
		t.Errorf("Expected expense rule to win, got expenses=%d journal=%d", len(store.expenses), len(store.journal))
	}
}

func TestFallbackStorageFailure(t *testing.T) {
	store := &fakeStore{failCreates: true}
	fb := NewFallback(store)

	result := fb.Parse(context.Background(), "u1", "water 500ml")
	if result.Success {
		t.Fatal("Expected failure when storage is down")
	}
	if result.Message == "" {
		t.Error("Expected a readable failure message")
	}
}
