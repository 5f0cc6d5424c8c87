package store

// User is a seeded back-office account. Passwords are stored and compared in
// plaintext; the registry predates any credential hardening.
type User struct {
	Login    string
	Password string
	Name     string
}

// Market is a registered marketplace location, unique on the
// (Neighborhood, Time, Day) triple.
type Market struct {
	ID           int64
	Neighborhood string
	Time         string
	Day          string
}

// Vendor is a person selling at a market. PhotoID is "" when the vendor has
// no photo, otherwise a filename in the vendor photo store.
type Vendor struct {
	ID       int64
	Name     string
	Stall    string
	Sex      string
	MarketID int64
	PhotoID  string
}

// VendorDetail is the joined read-path row: a vendor plus the neighborhood of
// its market, for display.
type VendorDetail struct {
	Vendor
	Neighborhood string
}

// Product is an item for sale. MarketID is stored on the product itself and
// is independent of the vendor's market; the two may diverge.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int64
	MarketID int64
	VendorID int64
	PhotoID  string
}

// ProductDetail is the joined read-path row: a product plus the neighborhood
// of its market and the name of its vendor.
type ProductDetail struct {
	Product
	Neighborhood string
	VendorName   string
}
