package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateProduct inserts a product row and returns it with the assigned id.
// Both the market and vendor references are stored as given; no existence
// check is made, and the market reference is independent of the vendor's.
func (s *Store) CreateProduct(ctx context.Context, name string, price float64, quantity int64, marketID, vendorID int64, photoID string) (Product, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, price, quantity, market_id, vendor_id, photo_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, price, quantity, marketID, vendorID, photoID)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}

	return Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		MarketID: marketID,
		VendorID: vendorID,
		PhotoID:  photoID,
	}, nil
}

// GetProduct retrieves a product by id, joined with its market's neighborhood
// and its vendor's name for display. Returns (nil, nil) if absent.
func (s *Store) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.price, p.quantity, p.market_id, p.vendor_id, p.photo_id,
		       m.neighborhood, v.name
		FROM products p
		INNER JOIN markets m ON p.market_id = m.id
		INNER JOIN vendors v ON p.vendor_id = v.id
		WHERE p.id = ?
	`, id)

	var d ProductDetail
	err := row.Scan(&d.ID, &d.Name, &d.Price, &d.Quantity, &d.MarketID, &d.VendorID, &d.PhotoID, &d.Neighborhood, &d.VendorName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &d, nil
}

// ListProducts returns all products joined with market neighborhood and
// vendor name, ordered by product name ascending.
// Returns an empty slice (not nil) when there are none.
func (s *Store) ListProducts(ctx context.Context) ([]ProductDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.price, p.quantity, p.market_id, p.vendor_id, p.photo_id,
		       m.neighborhood, v.name
		FROM products p
		INNER JOIN markets m ON p.market_id = m.id
		INNER JOIN vendors v ON p.vendor_id = v.id
		ORDER BY p.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []ProductDetail
	for rows.Next() {
		var d ProductDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.Price, &d.Quantity, &d.MarketID, &d.VendorID, &d.PhotoID, &d.Neighborhood, &d.VendorName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	if products == nil {
		products = []ProductDetail{}
	}
	return products, nil
}

// UpdateProduct overwrites all fields of a product row (full-row replace).
// The (market_id, vendor_id) pair is carried through unchanged from the
// caller even when the two disagree.
func (s *Store) UpdateProduct(ctx context.Context, id int64, name string, price float64, quantity int64, marketID, vendorID int64, photoID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, price = ?, quantity = ?, market_id = ?, vendor_id = ?, photo_id = ?
		WHERE id = ?
	`, name, price, quantity, marketID, vendorID, photoID, id)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product row. The product's photo file, if any, is
// not touched here.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
