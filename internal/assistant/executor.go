package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripmate/internal/models"
	"tripmate/internal/services"
)

// DefaultConfidenceThreshold is the trust cutoff for command intents
const DefaultConfidenceThreshold = 0.7

// Options configures the executor
type Options struct {
	// ConfidenceThreshold is the cutoff at or below which a parsed command
	// intent is discarded entirely and the deterministic rules run on the
	// raw text. Nil means DefaultConfidenceThreshold; an explicit zero
	// trusts every intent with positive confidence.
	ConfidenceThreshold *float64
}

// Executor orchestrates parse, confidence gating, fallback and dispatch
type Executor struct {
	parser      *Parser
	fallback    *Fallback
	store       Store
	synthesizer *Synthesizer
	threshold   float64
	today       func() string
}

// NewExecutor creates the command/query executor
func NewExecutor(parser *Parser, fallback *Fallback, store Store, synthesizer *Synthesizer, opts Options) *Executor {
	threshold := DefaultConfidenceThreshold
	if opts.ConfidenceThreshold != nil {
		threshold = *opts.ConfidenceThreshold
	}
	return &Executor{
		parser:      parser,
		fallback:    fallback,
		store:       store,
		synthesizer: synthesizer,
		threshold:   threshold,
		today:       services.TodayDate,
	}
}

// ExecuteAndRespond runs one command through the pipeline. It always
// returns a well-formed result; failures surface as success=false with a
// readable message, never as an error.
func (e *Executor) ExecuteAndRespond(ctx context.Context, userID, command string) ExecutionResult {
	intent := e.parser.ParseCommand(ctx, command)

	if intent.Confidence <= e.threshold || intent.Action == ActionUnknown {
		log.Printf("🔄 [ASSISTANT] Intent untrusted (action=%s confidence=%.2f), using fallback", intent.Action, intent.Confidence)
		countCommand("fallback")
		return e.fallback.Parse(ctx, userID, command)
	}

	result, known := e.dispatch(ctx, userID, intent)
	if !known {
		log.Printf("🔄 [ASSISTANT] Unknown action %q, using fallback", intent.Action)
		countCommand("fallback")
		return e.fallback.Parse(ctx, userID, command)
	}

	countCommand("intent")
	return result
}

// dispatch executes a trusted intent. The second return value is false
// when the action is not in the known set.
func (e *Executor) dispatch(ctx context.Context, userID string, intent CommandIntent) (ExecutionResult, bool) {
	switch intent.Action {
	case ActionAddPerson:
		fields := intent.Data.Person
		if fields == nil {
			fields = &PersonFields{}
		}
		person, err := e.store.CreatePerson(ctx, userID, models.CreatePersonRequest{
			Name:     fields.Name,
			Phone:    fields.Phone,
			Whatsapp: fields.Whatsapp,
			Email:    fields.Email,
			WhereMet: fields.WhereMet,
			Notes:    fields.Notes,
		})
		if err != nil {
			return storageFailure("person", err), true
		}
		return ExecutionResult{Success: true, Message: fmt.Sprintf("Added %s to contacts", person.Name), Data: person}, true

	case ActionAddExpense:
		fields := intent.Data.Expense
		if fields == nil {
			fields = &ExpenseFields{}
		}
		expense, err := e.store.CreateExpense(ctx, userID, models.CreateExpenseRequest{
			Amount:   float64(fields.Amount),
			Category: fields.Category,
			Note:     fields.Note,
		})
		if err != nil {
			return storageFailure("expense", err), true
		}
		return ExecutionResult{Success: true, Message: fmt.Sprintf("Logged ₹%v expense", expense.Amount), Data: expense}, true

	case ActionAddJournal:
		fields := intent.Data.Journal
		if fields == nil {
			fields = &JournalFields{}
		}
		entry, err := e.store.CreateJournal(ctx, userID, models.CreateJournalRequest{
			Title: fields.Title,
			Body:  fields.Body,
		})
		if err != nil {
			return storageFailure("journal entry", err), true
		}
		return ExecutionResult{Success: true, Message: "Added journal entry", Data: entry}, true

	case ActionAddWater:
		fields := intent.Data.Water
		if fields == nil {
			fields = &WaterFields{}
		}
		water, err := e.store.CreateWater(ctx, userID, models.CreateWaterLogRequest{
			QuantityMl: int(fields.QuantityMl),
		})
		if err != nil {
			return storageFailure("water log", err), true
		}
		return ExecutionResult{Success: true, Message: fmt.Sprintf("Logged %dml water intake", water.QuantityMl), Data: water}, true

	case ActionAddMeal:
		fields := intent.Data.Meal
		if fields == nil {
			fields = &MealFields{}
		}
		mealLog, err := e.store.CreateMeal(ctx, userID, models.CreateMealLogRequest{
			Meal: fields.Meal,
			Note: fields.Note,
		})
		if err != nil {
			return storageFailure("meal", err), true
		}
		return ExecutionResult{Success: true, Message: fmt.Sprintf("Logged %s", mealLog.Meal), Data: mealLog}, true

	case ActionAddPin:
		fields := intent.Data.Pin
		if fields == nil {
			fields = &PinFields{}
		}
		pin, err := e.store.CreatePin(ctx, userID, models.CreatePinRequest{
			Title:   fields.Title,
			Address: fields.Address,
			Notes:   fields.Notes,
			Status:  fields.Status,
		})
		if err != nil {
			return storageFailure("pin", err), true
		}
		return ExecutionResult{Success: true, Message: fmt.Sprintf("Added %s to destinations", pin.Title), Data: pin}, true
	}

	return ExecutionResult{}, false
}

var availableQueryEntities = []string{EntityPeople, EntityExpenses, EntityJournal, EntityPins}

// ExecuteQuery runs one query through parse, filter and synthesis. Unlike
// the command path, execution is not gated on confidence.
func (e *Executor) ExecuteQuery(ctx context.Context, userID, query string) QueryResult {
	intent := e.parser.ParseQuery(ctx, query, availableQueryEntities)

	if m := services.GetMetrics(); m != nil {
		m.Queries.WithLabelValues(intent.Entity).Inc()
	}

	results, err := e.runQuery(ctx, userID, intent)
	if err != nil {
		log.Printf("❌ [ASSISTANT] Query execution failed: %v", err)
		return QueryResult{
			Success:  false,
			Response: "I encountered an error while processing your request.",
			Data:     []interface{}{},
			Intent:   intent,
		}
	}

	response := e.synthesizer.GenerateResponse(ctx, intent.Query, results)

	return QueryResult{
		Success:  true,
		Response: response,
		Data:     results,
		Intent:   intent,
	}
}

func (e *Executor) runQuery(ctx context.Context, userID string, intent QueryIntent) (interface{}, error) {
	switch intent.Entity {
	case EntityPeople:
		return e.queryPeople(ctx, userID, intent.Filters)
	case EntityExpenses:
		return e.queryExpenses(ctx, userID, intent.Filters)
	case EntityJournal:
		return e.queryJournal(ctx, userID, intent.Filters)
	case EntityPins:
		return e.queryPins(ctx, userID, intent.Filters)
	}
	return []interface{}{}, nil
}

func (e *Executor) queryPeople(ctx context.Context, userID string, filters QueryFilters) ([]models.Person, error) {
	people, err := e.store.ListPeople(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Person, 0, len(people))
	for _, p := range people {
		if filters.WhereMet != "" && !containsFold(p.WhereMet, filters.WhereMet) {
			continue
		}
		if filters.Name != "" && !containsFold(p.Name, filters.Name) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (e *Executor) queryExpenses(ctx context.Context, userID string, filters QueryFilters) ([]models.Expense, error) {
	date := filters.Date
	if date == "today" {
		date = e.today()
	}

	expenses, err := e.store.ListExpenses(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Expense, 0, len(expenses))
	for _, ex := range expenses {
		if filters.Category != "" && ex.Category != filters.Category {
			continue
		}
		if filters.MinAmount > 0 && ex.Amount < float64(filters.MinAmount) {
			continue
		}
		matched = append(matched, ex)
	}
	return matched, nil
}

func (e *Executor) queryJournal(ctx context.Context, userID string, filters QueryFilters) ([]models.JournalEntry, error) {
	entries, err := e.store.ListJournal(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if filters.Keyword != "" &&
			!containsFold(entry.Title, filters.Keyword) &&
			!containsFold(entry.Body, filters.Keyword) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

func (e *Executor) queryPins(ctx context.Context, userID string, filters QueryFilters) ([]models.Pin, error) {
	pins, err := e.store.ListPins(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Pin, 0, len(pins))
	for _, pin := range pins {
		if filters.Status != "" && pin.Status != filters.Status {
			continue
		}
		if filters.Address != "" &&
			!containsFold(pin.Address, filters.Address) &&
			!containsFold(pin.Title, filters.Address) {
			continue
		}
		matched = append(matched, pin)
	}
	return matched, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func countCommand(outcome string) {
	if m := services.GetMetrics(); m != nil {
		m.Commands.WithLabelValues(outcome).Inc()
	}
}
