// Package registry implements the back-office entity services: market,
// vendor and product lifecycle against the record store and the photo
// stores, plus the lookup authenticator that gates every operation.
//
// Services perform no authorization themselves. Callers authenticate first
// (see Authenticator) and pass the resulting identity around; an operation
// reached without it is the caller's bug, not something checked here.
//
// There is no validation layer either: field values flow to the store as
// given, including dangling market/vendor references.
package registry

import (
	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/store"
)

// Registry bundles the authenticator and the three entity services over one
// record store and the per-kind photo stores.
type Registry struct {
	Auth     *Authenticator
	Markets  *Markets
	Vendors  *Vendors
	Products *Products
}

// New wires the services. vendorPhotos and productPhotos are separate
// directories; the two kinds never share files.
func New(db *store.Store, vendorPhotos, productPhotos *assets.Store) *Registry {
	return &Registry{
		Auth:     &Authenticator{db: db},
		Markets:  &Markets{db: db},
		Vendors:  &Vendors{db: db, photos: vendorPhotos},
		Products: &Products{db: db, photos: productPhotos},
	}
}
