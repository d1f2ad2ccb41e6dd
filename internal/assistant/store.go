package assistant

import (
	"context"

	"tripmate/internal/models"
	"tripmate/internal/services"
)

// Store is the storage capability the pipeline needs. It is a narrow view
// over the record services so tests can substitute an in-memory fake.
type Store interface {
	CreatePerson(ctx context.Context, userID string, req models.CreatePersonRequest) (*models.Person, error)
	CreateExpense(ctx context.Context, userID string, req models.CreateExpenseRequest) (*models.Expense, error)
	CreateJournal(ctx context.Context, userID string, req models.CreateJournalRequest) (*models.JournalEntry, error)
	CreateWater(ctx context.Context, userID string, req models.CreateWaterLogRequest) (*models.WaterLog, error)
	CreateMeal(ctx context.Context, userID string, req models.CreateMealLogRequest) (*models.MealLog, error)
	CreatePin(ctx context.Context, userID string, req models.CreatePinRequest) (*models.Pin, error)

	ListPeople(ctx context.Context, userID string) ([]models.Person, error)
	ListExpenses(ctx context.Context, userID, date string) ([]models.Expense, error)
	ListJournal(ctx context.Context, userID string) ([]models.JournalEntry, error)
	ListPins(ctx context.Context, userID string) ([]models.Pin, error)
}

// ServiceStore adapts the record services to the Store interface
type ServiceStore struct {
	People   *services.PersonService
	Expenses *services.ExpenseService
	Journal  *services.JournalService
	FoodLogs *services.FoodLogService
	Pins     *services.PinService
}

func (s *ServiceStore) CreatePerson(ctx context.Context, userID string, req models.CreatePersonRequest) (*models.Person, error) {
	return s.People.Create(ctx, userID, req)
}

func (s *ServiceStore) CreateExpense(ctx context.Context, userID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	return s.Expenses.Create(ctx, userID, req)
}

func (s *ServiceStore) CreateJournal(ctx context.Context, userID string, req models.CreateJournalRequest) (*models.JournalEntry, error) {
	return s.Journal.Create(ctx, userID, req)
}

func (s *ServiceStore) CreateWater(ctx context.Context, userID string, req models.CreateWaterLogRequest) (*models.WaterLog, error) {
	return s.FoodLogs.CreateWater(ctx, userID, req)
}

func (s *ServiceStore) CreateMeal(ctx context.Context, userID string, req models.CreateMealLogRequest) (*models.MealLog, error) {
	return s.FoodLogs.CreateMeal(ctx, userID, req)
}

func (s *ServiceStore) CreatePin(ctx context.Context, userID string, req models.CreatePinRequest) (*models.Pin, error) {
	return s.Pins.Create(ctx, userID, req)
}

func (s *ServiceStore) ListPeople(ctx context.Context, userID string) ([]models.Person, error) {
	return s.People.List(ctx, userID)
}

func (s *ServiceStore) ListExpenses(ctx context.Context, userID, date string) ([]models.Expense, error) {
	return s.Expenses.List(ctx, userID, date)
}

func (s *ServiceStore) ListJournal(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.Journal.List(ctx, userID)
}

func (s *ServiceStore) ListPins(ctx context.Context, userID string) ([]models.Pin, error) {
	return s.Pins.List(ctx, userID, "")
}
