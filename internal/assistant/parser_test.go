package assistant

import (
	"context"
	"fmt"
	"testing"
)

func TestParseCommandClampsConfidence(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{1.5, 1.0},
		{-3, 0.0},
		{0.85, 0.85},
	}

	for _, tc := range cases {
		client := &fakeClient{
			response: fmt.Sprintf(`{"action":"add_water","entity":"water","data":{"quantityMl":500},"confidence":%v}`, tc.raw),
		}
		parser := NewParser(client)

		intent := parser.ParseCommand(context.Background(), "water 500ml")
		if intent.Confidence != tc.want {
			t.Errorf("Confidence %v: expected clamp to %v, got %v", tc.raw, tc.want, intent.Confidence)
		}
	}
}

func TestParseCommandFailureDegradesToUnknown(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("connection refused")}
	parser := NewParser(client)

	intent := parser.ParseCommand(context.Background(), "add person John")
	if intent.Action != ActionUnknown {
		t.Errorf("Expected unknown action, got %q", intent.Action)
	}
	if intent.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %v", intent.Confidence)
	}
}

func TestParseCommandMalformedJSON(t *testing.T) {
	client := &fakeClient{response: "sorry, I can't help with that"}
	parser := NewParser(client)

	intent := parser.ParseCommand(context.Background(), "add person John")
	if intent.Action != ActionUnknown || intent.Confidence != 0 {
		t.Errorf("Expected zero-confidence unknown intent, got %+v", intent)
	}
}

func TestParseCommandStripsCodeFence(t *testing.T) {
	client := &fakeClient{
		response: "```json\n{\"action\":\"add_person\",\"entity\":\"person\",\"data\":{\"name\":\"John\",\"phone\":\"1234567890\"},\"confidence\":0.95}\n```",
	}
	parser := NewParser(client)

	intent := parser.ParseCommand(context.Background(), "add contact John with phone 1234567890")
	if intent.Action != ActionAddPerson {
		t.Fatalf("Expected add_person, got %q", intent.Action)
	}
	if intent.Data.Person == nil || intent.Data.Person.Name != "John" {
		t.Errorf("Expected person payload with name John, got %+v", intent.Data.Person)
	}
}

func TestParseCommandStringAmount(t *testing.T) {
	client := &fakeClient{
		response: `{"action":"add_expense","entity":"expense","data":{"amount":"250","category":"food","note":"lunch"},"confidence":0.9}`,
	}
	parser := NewParser(client)

	intent := parser.ParseCommand(context.Background(), "expense 250 for lunch")
	if intent.Data.Expense == nil {
		t.Fatal("Expected expense payload")
	}
	if float64(intent.Data.Expense.Amount) != 250 {
		t.Errorf("Expected amount 250, got %v", intent.Data.Expense.Amount)
	}
}

func TestParseCommandMissingFieldsDefault(t *testing.T) {
	client := &fakeClient{response: `{}`}
	parser := NewParser(client)

	intent := parser.ParseCommand(context.Background(), "do something")
	if intent.Action != ActionUnknown || intent.Entity != ActionUnknown {
		t.Errorf("Expected unknown action and entity, got %+v", intent)
	}
	if intent.Confidence != 0 {
		t.Errorf("Expected zero confidence for missing value, got %v", intent.Confidence)
	}
}

func TestParseQueryDefaultsQueryText(t *testing.T) {
	client := &fakeClient{
		response: `{"type":"filter","entity":"people","filters":{"whereMet":"Pune"},"confidence":0.95}`,
	}
	parser := NewParser(client)

	intent := parser.ParseQuery(context.Background(), "show me people in Pune", availableQueryEntities)
	if intent.Query != "show me people in Pune" {
		t.Errorf("Expected original query retained, got %q", intent.Query)
	}
	if intent.Entity != EntityPeople {
		t.Errorf("Expected entity people, got %q", intent.Entity)
	}
	if intent.Filters.WhereMet != "Pune" {
		t.Errorf("Expected whereMet filter, got %+v", intent.Filters)
	}
}

func TestParseQueryFailureDegrades(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("timeout")}
	parser := NewParser(client)

	intent := parser.ParseQuery(context.Background(), "list expenses", availableQueryEntities)
	if intent.Entity != ActionUnknown || intent.Confidence != 0 {
		t.Errorf("Expected zero-confidence unknown entity, got %+v", intent)
	}
	if intent.Query != "list expenses" {
		t.Errorf("Expected original query retained on failure, got %q", intent.Query)
	}
}
