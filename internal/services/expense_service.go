package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"github.com/google/uuid"
)

// ExpenseService handles expense operations
type ExpenseService struct {
	db *database.DB
}

// NewExpenseService creates a new expense service
func NewExpenseService(db *database.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// Create logs a new expense. Amount must be positive; unknown categories
// collapse to misc, matching the mobile client's behavior.
func (s *ExpenseService) Create(ctx context.Context, userID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	category := req.Category
	if !models.ValidExpenseCategory(category) {
		category = models.ExpenseCategoryMisc
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	spentAt := req.SpentAt
	if spentAt == "" {
		spentAt = todayDate()
	}

	e := &models.Expense{
		ID:        uuid.NewString(),
		UserID:    userID,
		SpentAt:   spentAt,
		Amount:    req.Amount,
		Currency:  currency,
		Category:  category,
		Note:      req.Note,
		PinID:     req.PinID,
		CreatedAt: time.Now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, spent_at, amount, currency, category, note, pin_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.UserID, e.SpentAt, e.Amount, e.Currency, e.Category, nullable(e.Note), nullable(e.PinID), e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	return e, nil
}

// List returns expenses for a user, optionally restricted to one calendar date,
// most recent first
func (s *ExpenseService) List(ctx context.Context, userID, date string) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, spent_at, amount, currency, category, note, pin_id, created_at
		FROM expenses
		WHERE user_id = ?
	`
	args := []interface{}{userID}
	if date != "" {
		query += " AND spent_at = ?"
		args = append(args, date)
	}
	query += " ORDER BY spent_at DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var note, pinID sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.SpentAt, &e.Amount, &e.Currency, &e.Category, &note, &pinID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Note = note.String
		e.PinID = pinID.String
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// TotalForDate sums expense amounts for one calendar date
func (s *ExpenseService) TotalForDate(ctx context.Context, userID, date string) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT SUM(amount) FROM expenses WHERE user_id = ? AND spent_at = ?
	`, userID, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total.Float64, nil
}
