package models

// ProductShipping is the shipping block of an admin-managed product.
type ProductShipping struct {
	Weight       float64 `json:"weight"`
	Dimensions   string  `json:"dimensions"`
	FreeShipping bool    `json:"freeShipping"`
}

// AdminProduct is a product as managed by the admin panel, richer than the
// catalog snapshot the cart consumes.
type AdminProduct struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Shipping    *ProductShipping `json:"shipping,omitempty"`
	Stock       int              `json:"stock,omitempty"`
}
