package models

import "time"

// Meal kinds
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealLog represents one logged meal
type MealLog struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	EatenAt string `json:"eatenAt"` // YYYY-MM-DD
	Meal    string `json:"meal"`
	Note    string `json:"note,omitempty"`
}

// CreateMealLogRequest is the request body for logging a meal
type CreateMealLogRequest struct {
	EatenAt string `json:"eatenAt,omitempty"` // defaults to today
	Meal    string `json:"meal"`
	Note    string `json:"note,omitempty"`
}

// WaterLog represents one logged water intake
type WaterLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	LoggedAt   time.Time `json:"loggedAt"`
	QuantityMl int       `json:"quantityMl"`
}

// CreateWaterLogRequest is the request body for logging water intake
type CreateWaterLogRequest struct {
	QuantityMl int `json:"quantityMl"` // defaults to 250
}

// TodayStats is the dashboard aggregate for the current day
type TodayStats struct {
	RoutineCompletion string   `json:"routineCompletion"` // "done/total"
	WaterGlasses      int      `json:"waterGlasses"`      // 250ml per glass
	MealsCompleted    []string `json:"mealsCompleted"`
	TotalExpenses     float64  `json:"totalExpenses"`
}
