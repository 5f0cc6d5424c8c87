package registry

import (
	"context"

	"github.com/feiralivre/feirad/internal/store"
)

// Markets manages marketplace locations.
type Markets struct {
	db *store.Store
}

// Create registers a market, upserting by the (neighborhood, time, day)
// natural key: if a market already exists for the triple it is returned
// unchanged with alreadyExisted=true and no row is written. Duplicate
// submission is an expected path, not an error.
//
// Two concurrent creates for the same triple can both miss the lookup; the
// loser then surfaces the store's UNIQUE constraint violation as an error.
func (m *Markets) Create(ctx context.Context, neighborhood, time, day string) (store.Market, bool, error) {
	existing, err := m.db.FindMarketByKey(ctx, neighborhood, time, day)
	if err != nil {
		return store.Market{}, false, err
	}
	if existing != nil {
		return *existing, true, nil
	}

	created, err := m.db.CreateMarket(ctx, neighborhood, time, day)
	if err != nil {
		return store.Market{}, false, err
	}
	return created, false, nil
}

// List returns all markets in insertion order.
func (m *Markets) List(ctx context.Context) ([]store.Market, error) {
	return m.db.ListMarkets(ctx)
}

// ListOrdered returns all markets ordered by neighborhood name, for
// selection forms.
func (m *Markets) ListOrdered(ctx context.Context) ([]store.Market, error) {
	return m.db.ListMarketsOrdered(ctx)
}
