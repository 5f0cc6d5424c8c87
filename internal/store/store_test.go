package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")

	// Open multiple times
	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	// Final open should work
	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	// Verify schema is intact
	tables := []string{"users", "markets", "vendors", "products"}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	checks := map[string]string{
		"journal_mode": "wal",
		"busy_timeout": "5000",
		// synchronous=NORMAL reports as 1
		"synchronous": "1",
	}
	for name, expected := range checks {
		if err := s.verifyPragma(name, expected); err != nil {
			t.Errorf("pragma check failed: %v", err)
		}
	}

	// Foreign key enforcement must stay off: dangling references are part of
	// the registry's observable behavior.
	if err := s.verifyPragma("foreign_keys", "0"); err != nil {
		t.Errorf("foreign_keys should be disabled: %v", err)
	}
}

func TestOpen_SeedsUsers(t *testing.T) {
	s := openTestStore(t)

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 seeded users, got %d", count)
	}
}

func TestOpen_ReopenKeepsSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()

	// Seeds use INSERT OR REPLACE, so reopening must not duplicate rows.
	var count int
	if err := s2.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 seeded users after reopen, got %d", count)
	}
}
