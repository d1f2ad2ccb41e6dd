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

// FoodLogService handles meal and water logging
type FoodLogService struct {
	db *database.DB
}

// NewFoodLogService creates a new food log service
func NewFoodLogService(db *database.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

func validMeal(meal string) bool {
	switch meal {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return true
	}
	return false
}

// CreateMeal logs a meal. EatenAt defaults to today.
func (s *FoodLogService) CreateMeal(ctx context.Context, userID string, req models.CreateMealLogRequest) (*models.MealLog, error) {
	if !validMeal(req.Meal) {
		return nil, fmt.Errorf("invalid meal: %s", req.Meal)
	}

	eatenAt := req.EatenAt
	if eatenAt == "" {
		eatenAt = todayDate()
	}

	m := &models.MealLog{
		ID:      uuid.NewString(),
		UserID:  userID,
		EatenAt: eatenAt,
		Meal:    req.Meal,
		Note:    req.Note,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meal_logs (id, user_id, eaten_at, meal, note)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.UserID, m.EatenAt, m.Meal, nullable(m.Note))
	if err != nil {
		return nil, fmt.Errorf("failed to insert meal log: %w", err)
	}

	return m, nil
}

// MealsForDate returns the distinct meals logged on one date
func (s *FoodLogService) MealsForDate(ctx context.Context, userID, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT meal FROM meal_logs WHERE user_id = ? AND eaten_at = ?
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal logs: %w", err)
	}
	defer rows.Close()

	var meals []string
	for rows.Next() {
		var meal string
		if err := rows.Scan(&meal); err != nil {
			return nil, fmt.Errorf("failed to scan meal log: %w", err)
		}
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}

// CreateWater logs a water intake. Quantity defaults to 250ml, one glass.
func (s *FoodLogService) CreateWater(ctx context.Context, userID string, req models.CreateWaterLogRequest) (*models.WaterLog, error) {
	qty := req.QuantityMl
	if qty <= 0 {
		qty = 250
	}

	w := &models.WaterLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		LoggedAt:   time.Now(),
		QuantityMl: qty,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO water_logs (id, user_id, logged_at, quantity_ml)
		VALUES (?, ?, ?, ?)
	`, w.ID, w.UserID, w.LoggedAt, w.QuantityMl)
	if err != nil {
		return nil, fmt.Errorf("failed to insert water log: %w", err)
	}

	return w, nil
}

// WaterTotalForDate sums water intake in ml for one calendar date
func (s *FoodLogService) WaterTotalForDate(ctx context.Context, userID, date string) (int, error) {
	start, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	end := start.AddDate(0, 0, 1)

	var total sql.NullInt64
	err = s.db.QueryRowContext(ctx, `
		SELECT SUM(quantity_ml) FROM water_logs
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
	`, userID, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum water logs: %w", err)
	}
	return int(total.Int64), nil
}
