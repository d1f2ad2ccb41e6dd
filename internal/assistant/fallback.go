package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tripmate/internal/models"
	"tripmate/internal/services"
)

const notRecognizedMessage = "Command not recognized. Try: 'add person [name], phone [number]' or 'expense 100 for food'"

var (
	personNameRe     = regexp.MustCompile(`(?i)(?:add person|add contact)\s+(.+?)(?:,|\s+(?:phone|number|contact))`)
	personPhoneRe    = regexp.MustCompile(`(?i)(?:phone|number|contact)\s+([+\d\s-]+)`)
	personLocationRe = regexp.MustCompile(`(?i)(?:at|in|met at)\s+([^,]+)`)

	expenseAmountRe   = regexp.MustCompile(`[₹$]?(\d+(?:\.\d{2})?)`)
	expenseCategoryRe = regexp.MustCompile(`(?i)(?:for|on)\s+(food|transport|stay|gear|misc)`)

	waterAmountRe = regexp.MustCompile(`(\d+)\s*(?:ml|glass)`)
)

// Fallback is the deterministic command parser, used whenever the model
// path is unavailable or untrusted. Rules run in a fixed priority order
// and the first successful one wins; a rule whose required field is
// missing falls through to the next rules rather than failing.
type Fallback struct {
	store Store
}

// NewFallback creates a new fallback parser
func NewFallback(store Store) *Fallback {
	return &Fallback{store: store}
}

// Parse matches the command against the rule set and performs the matched
// create operation
func (f *Fallback) Parse(ctx context.Context, userID, command string) ExecutionResult {
	cmd := strings.ToLower(strings.TrimSpace(command))

	if strings.Contains(cmd, "add person") || strings.Contains(cmd, "add contact") {
		// Extraction runs on the original text so names keep their casing
		if result, ok := f.parsePerson(ctx, userID, command); ok {
			return result
		}
	}

	if strings.Contains(cmd, "expense") || strings.Contains(cmd, "spent") || strings.Contains(cmd, "cost") {
		if result, ok := f.parseExpense(ctx, userID, cmd, command); ok {
			return result
		}
	}

	if strings.Contains(cmd, "water") && (strings.Contains(cmd, "ml") || strings.Contains(cmd, "glass")) {
		return f.parseWater(ctx, userID, cmd)
	}

	if strings.Contains(cmd, "breakfast") || strings.Contains(cmd, "lunch") ||
		strings.Contains(cmd, "dinner") || strings.Contains(cmd, "snack") {
		return f.parseMeal(ctx, userID, cmd, command)
	}

	if strings.Contains(cmd, "journal") || strings.Contains(cmd, "note") || strings.Contains(cmd, "today") {
		return f.parseJournal(ctx, userID, command)
	}

	countFallbackRule("none")
	return ExecutionResult{Success: false, Message: notRecognizedMessage}
}

func (f *Fallback) parsePerson(ctx context.Context, userID, original string) (ExecutionResult, bool) {
	nameMatch := personNameRe.FindStringSubmatch(original)
	if nameMatch == nil {
		return ExecutionResult{}, false
	}

	req := models.CreatePersonRequest{
		Name: strings.TrimSpace(nameMatch[1]),
	}
	if m := personPhoneRe.FindStringSubmatch(original); m != nil {
		req.Phone = strings.TrimSpace(m[1])
	}
	if m := personLocationRe.FindStringSubmatch(original); m != nil {
		req.WhereMet = strings.TrimSpace(m[1])
	}

	person, err := f.store.CreatePerson(ctx, userID, req)
	if err != nil {
		return storageFailure("person", err), true
	}

	countFallbackRule("person")
	return ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Added %s to contacts", person.Name),
		Data:    person,
	}, true
}

func (f *Fallback) parseExpense(ctx context.Context, userID, cmd, original string) (ExecutionResult, bool) {
	amountMatch := expenseAmountRe.FindStringSubmatch(cmd)
	if amountMatch == nil {
		return ExecutionResult{}, false
	}
	amount, err := strconv.ParseFloat(amountMatch[1], 64)
	if err != nil {
		return ExecutionResult{}, false
	}

	category := models.ExpenseCategoryMisc
	if m := expenseCategoryRe.FindStringSubmatch(cmd); m != nil {
		category = strings.ToLower(m[1])
	}

	expense, err := f.store.CreateExpense(ctx, userID, models.CreateExpenseRequest{
		Amount:   amount,
		Category: category,
		Note:     original,
	})
	if err != nil {
		return storageFailure("expense", err), true
	}

	countFallbackRule("expense")
	return ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Logged ₹%v expense", expense.Amount),
		Data:    expense,
	}, true
}

func (f *Fallback) parseWater(ctx context.Context, userID, cmd string) ExecutionResult {
	quantity := 250
	if m := waterAmountRe.FindStringSubmatch(cmd); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			quantity = n
		}
	}

	water, err := f.store.CreateWater(ctx, userID, models.CreateWaterLogRequest{QuantityMl: quantity})
	if err != nil {
		return storageFailure("water log", err)
	}

	countFallbackRule("water")
	return ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Logged %dml water intake", quantity),
		Data:    water,
	}
}

func (f *Fallback) parseMeal(ctx context.Context, userID, cmd, original string) ExecutionResult {
	// Priority order matters: "breakfast for lunch" logs breakfast
	meal := models.MealSnack
	if strings.Contains(cmd, "breakfast") {
		meal = models.MealBreakfast
	} else if strings.Contains(cmd, "lunch") {
		meal = models.MealLunch
	} else if strings.Contains(cmd, "dinner") {
		meal = models.MealDinner
	}

	mealLog, err := f.store.CreateMeal(ctx, userID, models.CreateMealLogRequest{
		Meal: meal,
		Note: original,
	})
	if err != nil {
		return storageFailure("meal", err)
	}

	countFallbackRule("meal")
	return ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Logged %s", meal),
		Data:    mealLog,
	}
}

func (f *Fallback) parseJournal(ctx context.Context, userID, original string) ExecutionResult {
	entry, err := f.store.CreateJournal(ctx, userID, models.CreateJournalRequest{
		Title: "Quick Entry",
		Body:  original,
	})
	if err != nil {
		return storageFailure("journal entry", err)
	}

	countFallbackRule("journal")
	return ExecutionResult{
		Success: true,
		Message: "Added journal entry",
		Data:    entry,
	}
}

func storageFailure(what string, err error) ExecutionResult {
	return ExecutionResult{
		Success: false,
		Message: fmt.Sprintf("Failed to save %s: %v", what, err),
	}
}

func countFallbackRule(rule string) {
	if m := services.GetMetrics(); m != nil {
		m.FallbackRules.WithLabelValues(rule).Inc()
	}
}
