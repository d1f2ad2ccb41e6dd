package assistant

import (
	"context"
	"fmt"

	"tripmate/internal/models"
)

// fakeStore records creates in memory and serves canned lists
type fakeStore struct {
	people   []models.Person
	expenses []models.Expense
	journal  []models.JournalEntry
	pins     []models.Pin
	water    []models.WaterLog
	meals    []models.MealLog

	failCreates bool
}

func (s *fakeStore) CreatePerson(_ context.Context, userID string, req models.CreatePersonRequest) (*models.Person, error) {
	if s.failCreates {
		return nil, fmt.Errorf("storage down")
	}
	p := models.Person{
		ID:       fmt.Sprintf("p%d", len(s.people)+1),
		UserID:   userID,
		Name:     req.Name,
		Phone:    req.Phone,
		Whatsapp: req.Whatsapp,
		Email:    req.Email,
		WhereMet: req.WhereMet,
		Notes:    req.Notes,
	}
	s.people = append(s.people, p)
	return &p, nil
}

func (s *fakeStore) CreateExpense(_ context.Context, userID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	if s.failCreates {
		return nil, fmt.Errorf("storage down")
	}
	category := req.Category
	if category == "" {
		category = models.ExpenseCategoryMisc
	}
	e := models.Expense{
		ID:       fmt.Sprintf("e%d", len(s.expenses)+1),
		UserID:   userID,
		Amount:   req.Amount,
		Category: category,
		Note:     req.Note,
	}
	s.expenses = append(s.expenses, e)
	return &e, nil
}

func (s *fakeStore) CreateJournal(_ context.Context, userID string, req models.CreateJournalRequest) (*models.JournalEntry, error) {
	if s.failCreates {
		return nil, fmt.Errorf("storage down")
	}
	entry := models.JournalEntry{
		ID:     fmt.Sprintf("j%d", len(s.journal)+1),
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
	}
	s.journal = append(s.journal, entry)
	return &entry, nil
}

func (s *fakeStore) CreateWater(_ context.Context, userID string, req models.CreateWaterLogRequest) (*models.WaterLog, error) {
	if s.failCreates {
		return nil, fmt.Errorf("storage down")
	}
	qty := req.QuantityMl
	if qty <= 0 {
		qty = 250
	}
	w := models.WaterLog{
		ID:         fmt.Sprintf("w%d", len(s.water)+1),
		UserID:     userID,
		QuantityMl: qty,
	}
	s.water = append(s.water, w)
	return &w, nil
}

func (s *fakeStore) CreateMeal(_ context.Context, userID string, req models.CreateMealLogRequest) (*models.MealLog, error) {
	if s.failCreates {
		return nil, fmt.Errorf("storage down")
	}
	m := models.MealLog{
		ID:     fmt.Sprintf("m%d", len(s.meals)+1),
		UserID: userID,
		Meal:   req.Meal,
		Note:   req.Note,
	}
	s.meals = append(s.meals, m)
	return &m, nil
}

func (s *fakeStore) CreatePin(_ context.Context, userID string, req models.CreatePinRequest) (*models.Pin, error) {
	if s.failCreates {
		return nil, fmt.Errorf("storage down")
	}
	pin := models.Pin{
		ID:      fmt.Sprintf("d%d", len(s.pins)+1),
		UserID:  userID,
		Title:   req.Title,
		Address: req.Address,
		Status:  req.Status,
		Notes:   req.Notes,
	}
	s.pins = append(s.pins, pin)
	return &pin, nil
}

func (s *fakeStore) ListPeople(context.Context, string) ([]models.Person, error) {
	return s.people, nil
}

func (s *fakeStore) ListExpenses(_ context.Context, _ string, date string) ([]models.Expense, error) {
	if date == "" {
		return s.expenses, nil
	}
	var out []models.Expense
	for _, e := range s.expenses {
		if e.SpentAt == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) ListJournal(context.Context, string) ([]models.JournalEntry, error) {
	return s.journal, nil
}

func (s *fakeStore) ListPins(context.Context, string) ([]models.Pin, error) {
	return s.pins, nil
}

// fakeClient returns canned completions or a canned error
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (c *fakeClient) Complete(context.Context, []Message, bool) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}
