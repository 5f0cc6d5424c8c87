package registry

import (
	"context"

	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/store"
)

// VendorInput carries the writable fields of a vendor. Edits are full-row
// replaces: every field is required and overwrites the stored value.
type VendorInput struct {
	Name     string
	Stall    string
	Sex      string
	MarketID int64
}

// Vendors manages vendor records and their photos.
type Vendors struct {
	db     *store.Store
	photos *assets.Store
}

// Photos returns the vendor photo store, for download/delete endpoints.
func (v *Vendors) Photos() *assets.Store {
	return v.photos
}

// Create saves the photo first (empty sentinel when absent or rejected) and
// inserts the row with whatever photo id resulted. The market reference is
// not checked for existence.
func (v *Vendors) Create(ctx context.Context, in VendorInput, photo *assets.Upload) (store.Vendor, error) {
	photoID, err := v.photos.Save(photo)
	if err != nil {
		return store.Vendor{}, err
	}
	return v.db.CreateVendor(ctx, in.Name, in.Stall, in.Sex, in.MarketID, photoID)
}

// Edit replaces a vendor's fields, swapping its photo when a new one is
// supplied.
//
// Returns (nil, nil) when the vendor does not exist, with no side effect at
// all: the upload is not consumed and nothing is deleted. Otherwise the new
// photo is saved first; a non-empty result replaces the old photo id and the
// old file is removed, while the empty sentinel keeps the previous photo
// unchanged. All other fields are overwritten unconditionally.
//
// On success the *previous* record is returned (callers use it for message
// phrasing); the updated row is not re-fetched.
func (v *Vendors) Edit(ctx context.Context, id int64, in VendorInput, photo *assets.Upload) (*store.VendorDetail, error) {
	prev, err := v.db.GetVendor(ctx, id)
	if err != nil || prev == nil {
		return nil, err
	}

	photoID, err := v.photos.Save(photo)
	if err != nil {
		return nil, err
	}
	if photoID == "" {
		photoID = prev.PhotoID
	} else if err := v.photos.Remove(prev.PhotoID); err != nil {
		return nil, err
	}

	if err := v.db.UpdateVendor(ctx, id, in.Name, in.Stall, in.Sex, in.MarketID, photoID); err != nil {
		return nil, err
	}
	return prev, nil
}

// Delete removes a vendor row, returning the deleted record, or (nil, nil)
// when it does not exist.
//
// The vendor's photo file is left on disk: row deletion has never cleaned up
// photos here, and callers depend on delete being row-only.
func (v *Vendors) Delete(ctx context.Context, id int64) (*store.VendorDetail, error) {
	prev, err := v.db.GetVendor(ctx, id)
	if err != nil || prev == nil {
		return nil, err
	}
	if err := v.db.DeleteVendor(ctx, id); err != nil {
		return nil, err
	}
	return prev, nil
}

// Get retrieves a vendor joined with its market, or (nil, nil) when absent.
func (v *Vendors) Get(ctx context.Context, id int64) (*store.VendorDetail, error) {
	return v.db.GetVendor(ctx, id)
}

// List returns all vendors joined with their markets.
func (v *Vendors) List(ctx context.Context) ([]store.VendorDetail, error) {
	return v.db.ListVendors(ctx)
}
