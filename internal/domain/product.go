package domain

// Product is a read-only record owned by the external catalog.
// JSON tags match the catalog API payload.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// CartLine pairs a product with its quantity in the cart.
// Quantity is always >= 1; a line with quantity 0 never exists.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
