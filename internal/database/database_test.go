package database

import (
	"os"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tmpFile := "test_database.db"
	defer os.Remove(tmpFile)

	db, err := New(tmpFile)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}
	if db.IsMySQL() {
		t.Error("Expected a file path DSN to open as SQLite")
	}
}

func TestInitialize(t *testing.T) {
	tmpFile := "test_init.db"
	defer os.Remove(tmpFile)

	db, err := New(tmpFile)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	tables := []string{
		"users",
		"pins",
		"people",
		"expenses",
		"journal",
		"routine_items",
		"routine_checks",
		"packing_items",
		"meal_logs",
		"water_logs",
		"providers",
	}

	for _, table := range tables {
		var name string
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		err := db.QueryRow(query, table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s was not created: %v", table, err)
		}
	}
}

func TestMySQLSchemaUsesMySQLDialect(t *testing.T) {
	if len(mysqlSchemas) != len(sqliteSchemas) {
		t.Fatalf("Expected both dialects to declare the same tables, got %d vs %d",
			len(mysqlSchemas), len(sqliteSchemas))
	}

	foundAutoIncrement := false
	for _, schema := range mysqlSchemas {
		// SQLite-only spellings would make MySQL error 1064 on startup
		if strings.Contains(schema, "AUTOINCREMENT") {
			t.Errorf("MySQL DDL contains SQLite AUTOINCREMENT: %s", schema)
		}
		if strings.Contains(schema, " TEXT PRIMARY KEY") {
			t.Errorf("MySQL DDL keys on an unsized TEXT column: %s", schema)
		}
		if strings.Contains(schema, "AUTO_INCREMENT") {
			foundAutoIncrement = true
		}
	}
	if !foundAutoIncrement {
		t.Error("Expected the providers table to use AUTO_INCREMENT on MySQL")
	}
}

func TestSQLiteSchemaAvoidsMySQLDialect(t *testing.T) {
	for _, schema := range sqliteSchemas {
		if strings.Contains(schema, "AUTO_INCREMENT") {
			t.Errorf("SQLite DDL contains MySQL AUTO_INCREMENT: %s", schema)
		}
		if strings.Contains(schema, "INDEX idx_") {
			t.Errorf("SQLite DDL declares an inline index: %s", schema)
		}
	}
}
