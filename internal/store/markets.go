package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// neighborhoodCollator orders neighborhood names the way a Brazilian reader
// expects: accents and case do not break the ordering ("Água Fria" sorts
// before "Centro"). SQLite's byte-wise ORDER BY gets this wrong, so ordered
// listings sort in Go instead.
var neighborhoodCollator = collate.New(language.BrazilianPortuguese, collate.Loose)

// CreateMarket inserts a market row and returns it with the assigned id.
//
// The (neighborhood, time, day) triple carries a UNIQUE constraint. Callers
// are expected to check FindMarketByKey first; if two writers race past that
// check, the loser surfaces the constraint violation as an error here.
func (s *Store) CreateMarket(ctx context.Context, neighborhood, time, day string) (Market, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO markets (neighborhood, time, day)
		VALUES (?, ?, ?)
	`, neighborhood, time, day)
	if err != nil {
		return Market{}, fmt.Errorf("create market: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Market{}, fmt.Errorf("create market: %w", err)
	}

	return Market{ID: id, Neighborhood: neighborhood, Time: time, Day: day}, nil
}

// GetMarket retrieves a market by id. Returns (nil, nil) if absent.
func (s *Store) GetMarket(ctx context.Context, id int64) (*Market, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, neighborhood, time, day
		FROM markets
		WHERE id = ?
	`, id)

	m, err := scanMarket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get market: %w", err)
	}
	return &m, nil
}

// FindMarketByKey looks a market up by its natural key. Returns (nil, nil)
// if no market exists for the triple.
func (s *Store) FindMarketByKey(ctx context.Context, neighborhood, time, day string) (*Market, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, neighborhood, time, day
		FROM markets
		WHERE neighborhood = ? AND time = ? AND day = ?
	`, neighborhood, time, day)

	m, err := scanMarket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find market by key: %w", err)
	}
	return &m, nil
}

// ListMarkets returns all markets in insertion order.
// Returns an empty slice (not nil) when the table is empty.
func (s *Store) ListMarkets(ctx context.Context) ([]Market, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, neighborhood, time, day
		FROM markets
	`)
	if err != nil {
		return nil, fmt.Errorf("query markets: %w", err)
	}
	defer rows.Close()

	markets, err := collectMarkets(rows)
	if err != nil {
		return nil, err
	}
	return markets, nil
}

// ListMarketsOrdered returns all markets ordered by neighborhood name, for
// use in selection forms.
func (s *Store) ListMarketsOrdered(ctx context.Context) ([]Market, error) {
	markets, err := s.ListMarkets(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(markets, func(i, j int) bool {
		return neighborhoodCollator.CompareString(markets[i].Neighborhood, markets[j].Neighborhood) < 0
	})
	return markets, nil
}

// UpdateMarket overwrites all fields of a market row (full-row replace).
func (s *Store) UpdateMarket(ctx context.Context, id int64, neighborhood, time, day string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE markets
		SET neighborhood = ?, time = ?, day = ?
		WHERE id = ?
	`, neighborhood, time, day, id)
	if err != nil {
		return fmt.Errorf("update market: %w", err)
	}
	return nil
}

// DeleteMarket removes a market row. Vendor and product rows referencing it
// are left untouched (no cascade).
func (s *Store) DeleteMarket(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM markets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete market: %w", err)
	}
	return nil
}

func collectMarkets(rows *sql.Rows) ([]Market, error) {
	var markets []Market
	for rows.Next() {
		var m Market
		if err := rows.Scan(&m.ID, &m.Neighborhood, &m.Time, &m.Day); err != nil {
			return nil, fmt.Errorf("scan market: %w", err)
		}
		markets = append(markets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate markets: %w", err)
	}
	if markets == nil {
		markets = []Market{}
	}
	return markets, nil
}

func scanMarket(row *sql.Row) (Market, error) {
	var m Market
	if err := row.Scan(&m.ID, &m.Neighborhood, &m.Time, &m.Day); err != nil {
		return Market{}, err
	}
	return m, nil
}
