// Package catalog holds the fixed storefront product catalog. It is
// read-only; the cart snapshots records from it at add time.
package catalog

import "rocketry-shop/models"

// Catalog is the product provider handed to the storefront controllers.
type Catalog struct {
	products []models.Product
	featured int
}

// New returns the standard demonstration catalog. The first six products are
// the featured set.
func New() *Catalog {
	return &Catalog{featured: 6, products: []models.Product{
		{
			ID:          "1",
			Name:        "Beginner Rocket Kit",
			Description: "Perfect starter kit for students new to model rocketry.",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1614315517650-3771cf72d18a?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		},
		{
			ID:          "2",
			Name:        "A8-3 Rocket Motors",
			Description: "Entry-level rocket motors suitable for small model rockets.",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1614726365952-510103b9eda5?q=80&w=1064&auto=format&fit=crop&ixlib=rb-4.0.3",
		},
		{
			ID:          "3",
			Name:        "UKROC Competition Team Kit",
			Description: "Complete kit for school teams participating in the UK Rocketry Challenge.",
			Price:       149.99,
			Image:       "https://images.unsplash.com/photo-1518364538800-6bae3c2ea0f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
		},
		{
			ID:          "4",
			Name:        "Educational Rocket Bundle",
			Description: "Comprehensive classroom kit with materials for 10 students.",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1517976487492-5750f3195933?ixlib=rb-4.0.3&auto=format&fit=crop&w=1760&q=80",
		},
		{
			ID:          "5",
			Name:        "Advanced Parachute System",
			Description: "High-quality recovery system for larger model rockets.",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1552353617-3bfd679b3bdd?ixlib=rb-4.0.3&auto=format&fit=crop&w=1760&q=80",
		},
		{
			ID:          "6",
			Name:        "Rocket Building Tools Set",
			Description: "Essential tools for model rocket construction.",
			Price:       34.99,
			Image:       "https://images.unsplash.com/photo-1621600411688-4be93c2c1208?ixlib=rb-4.0.3&auto=format&fit=crop&w=1760&q=80",
		},
		{
			ID:          "7",
			Name:        "Classroom Launch Kit",
			Description: "Everything needed for safe rocket launches at school.",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1454789476662-53eb23ba5907?ixlib=rb-4.0.3&auto=format&fit=crop&w=1760&q=80",
		},
		{
			ID:          "8",
			Name:        "Science Curriculum Pack",
			Description: "Complete teaching materials for rocketry education.",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?ixlib=rb-4.0.3&auto=format&fit=crop&w=1760&q=80",
		},
		{
			ID:          "9",
			Name:        "Water Rocket System",
			Description: "Safe, reusable water-powered rocket system for younger students.",
			Price:       19.99,
			Image:       "https://images.unsplash.com/photo-1614315519134-cfa6c9754ede?ixlib=rb-4.0.3&auto=format&fit=crop&w=1760&q=80",
		},
	}}
}

// All returns every product.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Featured returns the featured subset.
func (c *Catalog) Featured() []models.Product {
	n := c.featured
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]models.Product, n)
	copy(out, c.products[:n])
	return out
}

// ByID looks a product up by id. The second result is false when absent.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
