package models

// Product is a catalog record as handed to the cart. The cart snapshots it at
// add time and never re-reads the catalog afterwards.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// CartLine is one product-and-quantity entry in the cart. Quantity is always
// at least 1; a line whose quantity would drop to 0 is removed instead.
type CartLine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}
