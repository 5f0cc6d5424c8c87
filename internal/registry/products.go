package registry

import (
	"context"

	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/store"
)

// ProductInput carries the writable fields of a product. The market
// reference is independent of the vendor's market and both are carried
// through as given, including on edit.
type ProductInput struct {
	Name     string
	Price    float64
	Quantity int64
	MarketID int64
	VendorID int64
}

// Products manages product records and their photos. Semantics mirror
// Vendors exactly, with the extra denormalized market reference carried
// alongside the vendor reference.
type Products struct {
	db     *store.Store
	photos *assets.Store
}

// Photos returns the product photo store, for download/delete endpoints.
func (p *Products) Photos() *assets.Store {
	return p.photos
}

// Create saves the photo first (empty sentinel when absent or rejected) and
// inserts the row with whatever photo id resulted. Neither reference is
// checked for existence.
func (p *Products) Create(ctx context.Context, in ProductInput, photo *assets.Upload) (store.Product, error) {
	photoID, err := p.photos.Save(photo)
	if err != nil {
		return store.Product{}, err
	}
	return p.db.CreateProduct(ctx, in.Name, in.Price, in.Quantity, in.MarketID, in.VendorID, photoID)
}

// Edit replaces a product's fields, swapping its photo when a new one is
// supplied. Same contract as Vendors.Edit: (nil, nil) with zero side effects
// when the product does not exist, previous record returned on success.
func (p *Products) Edit(ctx context.Context, id int64, in ProductInput, photo *assets.Upload) (*store.ProductDetail, error) {
	prev, err := p.db.GetProduct(ctx, id)
	if err != nil || prev == nil {
		return nil, err
	}

	photoID, err := p.photos.Save(photo)
	if err != nil {
		return nil, err
	}
	if photoID == "" {
		photoID = prev.PhotoID
	} else if err := p.photos.Remove(prev.PhotoID); err != nil {
		return nil, err
	}

	if err := p.db.UpdateProduct(ctx, id, in.Name, in.Price, in.Quantity, in.MarketID, in.VendorID, photoID); err != nil {
		return nil, err
	}
	return prev, nil
}

// Delete removes a product row, returning the deleted record, or (nil, nil)
// when it does not exist. As with vendors, the photo file stays on disk.
func (p *Products) Delete(ctx context.Context, id int64) (*store.ProductDetail, error) {
	prev, err := p.db.GetProduct(ctx, id)
	if err != nil || prev == nil {
		return nil, err
	}
	if err := p.db.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}
	return prev, nil
}

// Get retrieves a product joined with its market and vendor, or (nil, nil)
// when absent.
func (p *Products) Get(ctx context.Context, id int64) (*store.ProductDetail, error) {
	return p.db.GetProduct(ctx, id)
}

// List returns all products joined with market and vendor, ordered by
// product name.
func (p *Products) List(ctx context.Context) ([]store.ProductDetail, error) {
	return p.db.ListProducts(ctx)
}
