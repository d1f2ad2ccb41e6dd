package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// RoutineService handles daily routine items and their per-day completion
type RoutineService struct {
	db *database.DB
}

// NewRoutineService creates a new routine service
func NewRoutineService(db *database.DB) *RoutineService {
	return &RoutineService{db: db}
}

// CreateItem adds a routine item. A reminder cron, if given, must be a
// valid 5-field expression.
func (s *RoutineService) CreateItem(ctx context.Context, userID string, req models.CreateRoutineItemRequest) (*models.RoutineItem, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if req.ReminderCron != "" {
		if _, err := cronParser.Parse(req.ReminderCron); err != nil {
			return nil, fmt.Errorf("invalid reminder cron %q: %w", req.ReminderCron, err)
		}
	}

	isDaily := true
	if req.IsDaily != nil {
		isDaily = *req.IsDaily
	}

	item := &models.RoutineItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        req.Title,
		IsDaily:      isDaily,
		ReminderCron: req.ReminderCron,
		CreatedAt:    time.Now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routine_items (id, user_id, title, is_daily, reminder_cron, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.ID, item.UserID, item.Title, item.IsDaily, nullable(item.ReminderCron), item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert routine item: %w", err)
	}

	return item, nil
}

// ListItems returns all routine items for a user
func (s *RoutineService) ListItems(ctx context.Context, userID string) ([]models.RoutineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, is_daily, reminder_cron, created_at
		FROM routine_items
		WHERE user_id = ?
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query routine items: %w", err)
	}
	defer rows.Close()

	var items []models.RoutineItem
	for rows.Next() {
		var item models.RoutineItem
		var reminderCron sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.IsDaily, &reminderCron, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan routine item: %w", err)
		}
		item.ReminderCron = reminderCron.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// MarkDone upserts today's check for a routine item
func (s *RoutineService) MarkDone(ctx context.Context, userID, itemID string, done bool) (*models.RoutineCheck, error) {
	var owner string
	err := s.db.QueryRowContext(ctx, `SELECT user_id FROM routine_items WHERE id = ?`, itemID).Scan(&owner)
	if err == sql.ErrNoRows || (err == nil && owner != userID) {
		return nil, fmt.Errorf("routine item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up routine item: %w", err)
	}

	doneOn := todayDate()
	check := &models.RoutineCheck{
		ID:     uuid.NewString(),
		ItemID: itemID,
		DoneOn: doneOn,
		Done:   done,
	}

	query := `
		INSERT INTO routine_checks (id, item_id, done_on, done)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(item_id, done_on) DO UPDATE SET done = excluded.done
	`
	if s.db.IsMySQL() {
		query = `
			INSERT INTO routine_checks (id, item_id, done_on, done)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE done = VALUES(done)
		`
	}
	_, err = s.db.ExecContext(ctx, query, check.ID, check.ItemID, check.DoneOn, check.Done)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert routine check: %w", err)
	}

	return check, nil
}

// ChecksForDate returns the checks recorded for a user's items on one date
func (s *RoutineService) ChecksForDate(ctx context.Context, userID, date string) ([]models.RoutineCheck, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rc.id, rc.item_id, rc.done_on, rc.done
		FROM routine_checks rc
		JOIN routine_items ri ON ri.id = rc.item_id
		WHERE ri.user_id = ? AND rc.done_on = ?
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query routine checks: %w", err)
	}
	defer rows.Close()

	var checks []models.RoutineCheck
	for rows.Next() {
		var c models.RoutineCheck
		if err := rows.Scan(&c.ID, &c.ItemID, &c.DoneOn, &c.Done); err != nil {
			return nil, fmt.Errorf("failed to scan routine check: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// CompletionForDate reports "done/total" for a user's daily items on one date
func (s *RoutineService) CompletionForDate(ctx context.Context, userID, date string) (string, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM routine_items WHERE user_id = ? AND is_daily = 1
	`, userID).Scan(&total)
	if err != nil {
		return "", fmt.Errorf("failed to count routine items: %w", err)
	}

	var done int
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM routine_checks rc
		JOIN routine_items ri ON ri.id = rc.item_id
		WHERE ri.user_id = ? AND ri.is_daily = 1 AND rc.done_on = ? AND rc.done = 1
	`, userID, date).Scan(&done)
	if err != nil {
		return "", fmt.Errorf("failed to count routine checks: %w", err)
	}

	return fmt.Sprintf("%d/%d", done, total), nil
}
