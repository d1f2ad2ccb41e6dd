package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// JournalService handles journal entries. Rendered HTML is cached in-memory
// since entries are immutable once written.
type JournalService struct {
	db        *database.DB
	md        goldmark.Markdown
	htmlCache *gocache.Cache
}

// NewJournalService creates a new journal service
func NewJournalService(db *database.DB) *JournalService {
	return &JournalService{
		db: db,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		htmlCache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// Create adds a journal entry. Body is required; an empty title becomes
// "Quick Entry" so voice-dictated notes still list cleanly.
func (s *JournalService) Create(ctx context.Context, userID string, req models.CreateJournalRequest) (*models.JournalEntry, error) {
	if req.Body == "" {
		return nil, fmt.Errorf("body is required")
	}

	title := req.Title
	if title == "" {
		title = "Quick Entry"
	}

	taggedAt := time.Now()
	entry := &models.JournalEntry{
		ID:       uuid.NewString(),
		UserID:   userID,
		Title:    title,
		Body:     req.Body,
		PinID:    req.PinID,
		TaggedAt: taggedAt,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal (id, user_id, title, body, pin_id, tagged_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.UserID, entry.Title, entry.Body, nullable(entry.PinID), entry.TaggedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return entry, nil
}

// List returns all journal entries for a user, newest first
func (s *JournalService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, body, pin_id, tagged_at
		FROM journal
		WHERE user_id = ?
		ORDER BY tagged_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// GetByID fetches a single entry, scoped to the owning user
func (s *JournalService) GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, body, pin_id, tagged_at
		FROM journal
		WHERE id = ? AND user_id = ?
	`, id, userID)

	var entry models.JournalEntry
	var pinID sql.NullString
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Body, &pinID, &entry.TaggedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal entry: %w", err)
	}
	entry.PinID = pinID.String
	return &entry, nil
}

// RenderHTML converts an entry's markdown body to HTML, using the cache
// when possible
func (s *JournalService) RenderHTML(ctx context.Context, userID, id string) (string, error) {
	if cached, found := s.htmlCache.Get(id); found {
		return cached.(string), nil
	}

	entry, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(entry.Body), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	html := buf.String()
	s.htmlCache.Set(id, html, gocache.DefaultExpiration)
	return html, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJournalEntry(r rowScanner) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	var pinID sql.NullString
	if err := r.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Body, &pinID, &entry.TaggedAt); err != nil {
		return nil, fmt.Errorf("failed to scan journal entry: %w", err)
	}
	entry.PinID = pinID.String
	return &entry, nil
}
