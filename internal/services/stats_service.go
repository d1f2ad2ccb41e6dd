package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tripmate/internal/models"
)

const statsCacheTTL = 60 * time.Second

// StatsService aggregates the daily dashboard numbers. Results are cached
// briefly in Redis when it is available; every sub-query runs on a short
// timeout so one slow table cannot stall the dashboard.
type StatsService struct {
	routines *RoutineService
	foodLogs *FoodLogService
	expenses *ExpenseService
	redis    *RedisService // optional
}

// NewStatsService creates a new stats service. redis may be nil.
func NewStatsService(routines *RoutineService, foodLogs *FoodLogService, expenses *ExpenseService, redis *RedisService) *StatsService {
	return &StatsService{
		routines: routines,
		foodLogs: foodLogs,
		expenses: expenses,
		redis:    redis,
	}
}

// Today builds the today-stats aggregate for a user. Individual failures
// degrade to zero values rather than failing the whole response.
func (s *StatsService) Today(ctx context.Context, userID string) (*models.TodayStats, error) {
	date := todayDate()
	cacheKey := "stats:today:" + userID + ":" + date

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey); err == nil && cached != "" {
			var stats models.TodayStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats := &models.TodayStats{
		RoutineCompletion: "0/0",
		MealsCompleted:    []string{},
	}

	run := func(name string, fn func(context.Context) error) {
		qctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer cancel()
		if err := fn(qctx); err != nil {
			log.Printf("⚠️ [STATS] %s failed for user %s: %v", name, userID, err)
		}
	}

	run("routine completion", func(qctx context.Context) error {
		completion, err := s.routines.CompletionForDate(qctx, userID, date)
		if err != nil {
			return err
		}
		stats.RoutineCompletion = completion
		return nil
	})

	run("water total", func(qctx context.Context) error {
		totalMl, err := s.foodLogs.WaterTotalForDate(qctx, userID, date)
		if err != nil {
			return err
		}
		stats.WaterGlasses = totalMl / 250
		return nil
	})

	run("meals", func(qctx context.Context) error {
		meals, err := s.foodLogs.MealsForDate(qctx, userID, date)
		if err != nil {
			return err
		}
		if meals != nil {
			stats.MealsCompleted = meals
		}
		return nil
	})

	run("expense total", func(qctx context.Context) error {
		total, err := s.expenses.TotalForDate(qctx, userID, date)
		if err != nil {
			return err
		}
		stats.TotalExpenses = total
		return nil
	})

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, cacheKey, string(data), statsCacheTTL); err != nil {
				log.Printf("⚠️ [STATS] cache write failed: %v", err)
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached today-stats for a user, called after writes
// that feed the dashboard
func (s *StatsService) Invalidate(ctx context.Context, userID string) {
	if s.redis == nil {
		return
	}
	cacheKey := "stats:today:" + userID + ":" + todayDate()
	if err := s.redis.Delete(ctx, cacheKey); err != nil {
		log.Printf("⚠️ [STATS] cache invalidation failed: %v", err)
	}
}
