package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateVendor inserts a vendor row and returns it with the assigned id.
// The market reference is stored as given; no existence check is made.
func (s *Store) CreateVendor(ctx context.Context, name, stall, sex string, marketID int64, photoID string) (Vendor, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO vendors (name, stall, sex, market_id, photo_id)
		VALUES (?, ?, ?, ?, ?)
	`, name, stall, sex, marketID, photoID)
	if err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", err)
	}

	return Vendor{ID: id, Name: name, Stall: stall, Sex: sex, MarketID: marketID, PhotoID: photoID}, nil
}

// GetVendor retrieves a vendor by id, joined with its market's neighborhood
// for display. Returns (nil, nil) if absent.
func (s *Store) GetVendor(ctx context.Context, id int64) (*VendorDetail, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT v.id, v.name, v.stall, v.sex, v.market_id, v.photo_id, m.neighborhood
		FROM vendors v
		INNER JOIN markets m ON v.market_id = m.id
		WHERE v.id = ?
	`, id)

	var d VendorDetail
	err := row.Scan(&d.ID, &d.Name, &d.Stall, &d.Sex, &d.MarketID, &d.PhotoID, &d.Neighborhood)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &d, nil
}

// ListVendors returns all vendors joined with their market's neighborhood.
// Returns an empty slice (not nil) when there are none.
func (s *Store) ListVendors(ctx context.Context) ([]VendorDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.stall, v.sex, v.market_id, v.photo_id, m.neighborhood
		FROM vendors v
		INNER JOIN markets m ON v.market_id = m.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []VendorDetail
	for rows.Next() {
		var d VendorDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.Stall, &d.Sex, &d.MarketID, &d.PhotoID, &d.Neighborhood); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendors: %w", err)
	}

	if vendors == nil {
		vendors = []VendorDetail{}
	}
	return vendors, nil
}

// UpdateVendor overwrites all fields of a vendor row (full-row replace).
func (s *Store) UpdateVendor(ctx context.Context, id int64, name, stall, sex string, marketID int64, photoID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE vendors
		SET name = ?, stall = ?, sex = ?, market_id = ?, photo_id = ?
		WHERE id = ?
	`, name, stall, sex, marketID, photoID, id)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// DeleteVendor removes a vendor row. The vendor's photo file, if any, is not
// touched here.
func (s *Store) DeleteVendor(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
