package services

import (
	"os"
	"testing"

	"tripmate/internal/database"
)

func setupTestDB(t *testing.T, name string) (*database.DB, func()) {
	db, err := database.New(name)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := db.Initialize(); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(name)
	}

	return db, cleanup
}
