package store

import (
	"context"
	"path/filepath"
	"testing"
)

// openTestStore creates a store backed by a fresh database in a temp dir.
// The store is closed automatically when the test finishes.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "registry.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// mustCreateMarket inserts a market or fails the test.
func mustCreateMarket(t *testing.T, s *Store, neighborhood, time, day string) Market {
	t.Helper()

	m, err := s.CreateMarket(context.Background(), neighborhood, time, day)
	if err != nil {
		t.Fatalf("CreateMarket(%q, %q, %q) failed: %v", neighborhood, time, day, err)
	}
	return m
}

// mustCreateVendor inserts a vendor or fails the test.
func mustCreateVendor(t *testing.T, s *Store, name, stall, sex string, marketID int64, photoID string) Vendor {
	t.Helper()

	v, err := s.CreateVendor(context.Background(), name, stall, sex, marketID, photoID)
	if err != nil {
		t.Fatalf("CreateVendor(%q) failed: %v", name, err)
	}
	return v
}
