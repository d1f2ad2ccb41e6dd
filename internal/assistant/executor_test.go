package assistant

import (
	"context"
	"fmt"
	"testing"

	"tripmate/internal/models"
)

func newTestExecutor(store *fakeStore, parserClient, synthClient CompletionClient) *Executor {
	return newTestExecutorThreshold(store, parserClient, synthClient, 0.7)
}

func newTestExecutorThreshold(store *fakeStore, parserClient, synthClient CompletionClient, threshold float64) *Executor {
	parser := NewParser(parserClient)
	fallback := NewFallback(store)
	synthesizer := NewSynthesizer(synthClient)
	e := NewExecutor(parser, fallback, store, synthesizer, Options{ConfidenceThreshold: &threshold})
	e.today = func() string { return "2026-08-31" }
	return e
}

func TestExecuteTrustedIntent(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{
		response: `{"action":"add_person","entity":"person","data":{"name":"John","phone":"1234567890","whereMet":"Pune"},"confidence":0.95}`,
	}
	e := newTestExecutor(store, client, client)

	result := e.ExecuteAndRespond(context.Background(), "u1", "add contact John with phone 1234567890 met in Pune")
	if !result.Success {
		t.Fatalf("Expected success, got: %s", result.Message)
	}
	if result.Message != "Added John to contacts" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
	if len(store.people) != 1 || store.people[0].WhereMet != "Pune" {
		t.Errorf("Expected person created from intent fields, got %+v", store.people)
	}
}

func TestExecuteLowConfidenceForcesFallback(t *testing.T) {
	store := &fakeStore{}
	// The model returns a structured intent, but below threshold the whole
	// thing is discarded and the raw text is re-parsed deterministically
	client := &fakeClient{
		response: `{"action":"add_person","entity":"person","data":{"name":"WRONG"},"confidence":0.5}`,
	}
	e := newTestExecutor(store, client, client)

	result := e.ExecuteAndRespond(context.Background(), "u1", "add person Rajesh, phone 9876543210, met in Delhi")
	if !result.Success {
		t.Fatalf("Expected success via fallback, got: %s", result.Message)
	}
	if result.Message != "Added Rajesh to contacts" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
	p := store.people[0]
	if p.Name != "Rajesh" || p.Phone != "9876543210" || p.WhereMet != "Delhi" {
		t.Errorf("Expected fallback-extracted fields, got %+v", p)
	}
}

func TestExecuteThresholdIsExclusive(t *testing.T) {
	store := &fakeStore{}
	// Exactly at the threshold is still untrusted
	client := &fakeClient{
		response: `{"action":"add_water","entity":"water","data":{"quantityMl":999},"confidence":0.7}`,
	}
	e := newTestExecutor(store, client, client)

	e.ExecuteAndRespond(context.Background(), "u1", "water 500ml")
	if len(store.water) != 1 || store.water[0].QuantityMl != 500 {
		t.Errorf("Expected fallback water log of 500ml, got %+v", store.water)
	}
}

func TestExecuteZeroThresholdIsConfigurable(t *testing.T) {
	store := &fakeStore{}
	// An explicit zero threshold trusts any positive-confidence intent
	client := &fakeClient{
		response: `{"action":"add_water","entity":"water","data":{"quantityMl":999},"confidence":0.05}`,
	}
	e := newTestExecutorThreshold(store, client, client, 0)

	e.ExecuteAndRespond(context.Background(), "u1", "water 500ml")
	if len(store.water) != 1 || store.water[0].QuantityMl != 999 {
		t.Errorf("Expected the structured intent's 999ml, got %+v", store.water)
	}
}

func TestExecuteNilThresholdUsesDefault(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{
		response: `{"action":"add_water","entity":"water","data":{"quantityMl":999},"confidence":0.5}`,
	}
	parser := NewParser(client)
	fallback := NewFallback(store)
	synthesizer := NewSynthesizer(client)
	e := NewExecutor(parser, fallback, store, synthesizer, Options{})
	if e.threshold != DefaultConfidenceThreshold {
		t.Fatalf("Expected default threshold %v, got %v", DefaultConfidenceThreshold, e.threshold)
	}

	e.ExecuteAndRespond(context.Background(), "u1", "water 500ml")
	if len(store.water) != 1 || store.water[0].QuantityMl != 500 {
		t.Errorf("Expected fallback water log of 500ml, got %+v", store.water)
	}
}

func TestExecuteParserFailureNeverPropagates(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{err: fmt.Errorf("boom")}
	e := newTestExecutor(store, client, client)

	result := e.ExecuteAndRespond(context.Background(), "u1", "hello there")
	if result.Success {
		t.Fatal("Expected failure result for unrecognizable command")
	}
	if result.Message == "" {
		t.Error("Expected a user-actionable message")
	}
}

func TestExecuteUnknownActionFallsBack(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{
		response: `{"action":"teleport","entity":"user","data":{},"confidence":0.99}`,
	}
	e := newTestExecutor(store, client, client)

	result := e.ExecuteAndRespond(context.Background(), "u1", "water 300ml")
	if !result.Success {
		t.Fatalf("Expected fallback to handle the command, got: %s", result.Message)
	}
	if len(store.water) != 1 || store.water[0].QuantityMl != 300 {
		t.Errorf("Expected fallback water log, got %+v", store.water)
	}
}

func TestQueryPeopleWhereMetFilter(t *testing.T) {
	store := &fakeStore{
		people: []models.Person{
			{ID: "p1", Name: "John", WhereMet: "Pune Station"},
			{ID: "p2", Name: "Sarah", WhereMet: "Mumbai"},
			{ID: "p3", Name: "Ravi", WhereMet: "pune old town"},
		},
	}
	parserClient := &fakeClient{
		response: `{"type":"filter","entity":"people","filters":{"whereMet":"Pune"},"query":"show me people in Pune","confidence":0.95}`,
	}
	synthClient := &fakeClient{response: "I found 2 people you met in Pune."}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "show me people in Pune")
	if !result.Success {
		t.Fatal("Expected query success")
	}

	people, ok := result.Data.([]models.Person)
	if !ok {
		t.Fatalf("Expected []models.Person, got %T", result.Data)
	}
	if len(people) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(people))
	}
	for _, p := range people {
		if p.ID == "p2" {
			t.Error("Mumbai contact should not match")
		}
	}
	if result.Response != "I found 2 people you met in Pune." {
		t.Errorf("Unexpected response: %q", result.Response)
	}
}

func TestQueryExpensesTodayAndCategory(t *testing.T) {
	store := &fakeStore{
		expenses: []models.Expense{
			{ID: "e1", SpentAt: "2026-08-31", Category: "food", Amount: 400},
			{ID: "e2", SpentAt: "2026-08-31", Category: "transport", Amount: 500},
			{ID: "e3", SpentAt: "2026-08-30", Category: "food", Amount: 250},
		},
	}
	parserClient := &fakeClient{
		response: `{"type":"filter","entity":"expenses","filters":{"date":"today","category":"food"},"query":"today's food expenses","confidence":0.9}`,
	}
	synthClient := &fakeClient{response: "You spent ₹400 on food today."}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "today's food expenses")
	expenses := result.Data.([]models.Expense)
	if len(expenses) != 1 || expenses[0].ID != "e1" {
		t.Errorf("Expected only today's food expense, got %+v", expenses)
	}
}

func TestQueryExpensesMinAmount(t *testing.T) {
	store := &fakeStore{
		expenses: []models.Expense{
			{ID: "e1", Amount: 100},
			{ID: "e2", Amount: 900},
		},
	}
	parserClient := &fakeClient{
		response: `{"type":"filter","entity":"expenses","filters":{"minAmount":500},"query":"big expenses","confidence":0.9}`,
	}
	synthClient := &fakeClient{response: "One big expense."}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "big expenses")
	expenses := result.Data.([]models.Expense)
	if len(expenses) != 1 || expenses[0].ID != "e2" {
		t.Errorf("Expected only the 900 expense, got %+v", expenses)
	}
}

func TestQueryJournalKeywordMatchesTitleOrBody(t *testing.T) {
	store := &fakeStore{
		journal: []models.JournalEntry{
			{ID: "j1", Title: "Street food tour", Body: "so much chaat"},
			{ID: "j2", Title: "Trek day", Body: "the food at base camp was basic"},
			{ID: "j3", Title: "Beach", Body: "lazy day"},
		},
	}
	parserClient := &fakeClient{
		response: `{"type":"search","entity":"journal","filters":{"keyword":"food"},"query":"journal entries about food","confidence":0.9}`,
	}
	synthClient := &fakeClient{response: "Two entries mention food."}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "journal entries about food")
	entries := result.Data.([]models.JournalEntry)
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}
}

func TestQueryPinsStatusAndAddress(t *testing.T) {
	store := &fakeStore{
		pins: []models.Pin{
			{ID: "d1", Title: "Gateway of India", Address: "Mumbai", Status: "visited"},
			{ID: "d2", Title: "Hampi ruins", Address: "Karnataka", Status: "planned"},
			{ID: "d3", Title: "Mumbai street walk", Address: "", Status: "planned"},
		},
	}
	parserClient := &fakeClient{
		response: `{"type":"filter","entity":"pins","filters":{"status":"planned","address":"Mumbai"},"query":"planned places in Mumbai","confidence":0.9}`,
	}
	synthClient := &fakeClient{response: "One planned spot in Mumbai."}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "planned places in Mumbai")
	pins := result.Data.([]models.Pin)
	// d1 is visited, d3 matches via title
	if len(pins) != 1 || pins[0].ID != "d3" {
		t.Errorf("Expected only d3, got %+v", pins)
	}
}

func TestQueryExecutesRegardlessOfConfidence(t *testing.T) {
	store := &fakeStore{
		people: []models.Person{{ID: "p1", Name: "John", WhereMet: "Pune"}},
	}
	parserClient := &fakeClient{
		response: `{"type":"filter","entity":"people","filters":{"whereMet":"Pune"},"query":"people in Pune","confidence":0.1}`,
	}
	synthClient := &fakeClient{response: "Found John."}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "people in Pune")
	if !result.Success {
		t.Fatal("Low-confidence queries still execute")
	}
	if len(result.Data.([]models.Person)) != 1 {
		t.Errorf("Expected the filter to run, got %+v", result.Data)
	}
}

func TestQuerySynthesisFailureUsesApology(t *testing.T) {
	store := &fakeStore{
		people: []models.Person{{ID: "p1", Name: "John", WhereMet: "Pune"}},
	}
	parserClient := &fakeClient{
		response: `{"type":"filter","entity":"people","filters":{"whereMet":"Pune"},"query":"people in Pune","confidence":0.9}`,
	}
	synthClient := &fakeClient{err: fmt.Errorf("provider down")}
	e := newTestExecutor(store, parserClient, synthClient)

	result := e.ExecuteQuery(context.Background(), "u1", "people in Pune")
	if result.Response != "I encountered an error while processing your request." {
		t.Errorf("Expected apology string, got %q", result.Response)
	}
	// Raw data still comes back even when synthesis fails
	if len(result.Data.([]models.Person)) != 1 {
		t.Errorf("Expected data despite synthesis failure, got %+v", result.Data)
	}
}
