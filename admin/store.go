// Package admin implements the content-management store backing the admin
// panel: products, pages, orders, and store settings, each kept as one JSON
// value in durable storage. A key that is absent or unreadable is re-seeded
// with the default dataset.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"rocketry-shop/models"
	"rocketry-shop/storage"
)

// Storage keys. The admin datasets are shared, not per-scope.
const (
	KeyProducts = "products"
	KeyPages    = "pages"
	KeyOrders   = "orders"
	KeySettings = "storeSettings"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrMissingFields = errors.New("missing required product fields")
	ErrBadStatus     = errors.New("unknown order status")
)

// Store is the admin panel's persistence layer.
type Store struct {
	mu sync.Mutex
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Products returns the managed product list, seeding defaults on first use.
func (s *Store) Products(ctx context.Context) ([]models.AdminProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadProducts(ctx)
}

// SaveProduct creates a product when id is empty, otherwise updates the
// matching product. Name, description, image, and a positive price are
// required.
func (s *Store) SaveProduct(ctx context.Context, id string, req models.ProductRequest) (models.AdminProduct, error) {
	if req.Name == "" || req.Description == "" || req.Image == "" || req.Price <= 0 {
		return models.AdminProduct{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return models.AdminProduct{}, err
	}

	product := models.AdminProduct{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Shipping:    req.Shipping,
		Stock:       req.Stock,
	}

	if id == "" {
		product.ID = uuid.NewString()
		products = append(products, product)
	} else {
		found := false
		for i := range products {
			if products[i].ID == id {
				products[i] = product
				found = true
				break
			}
		}
		if !found {
			return models.AdminProduct{}, ErrNotFound
		}
	}

	if err := s.save(ctx, KeyProducts, products); err != nil {
		return models.AdminProduct{}, err
	}
	return product, nil
}

// DeleteProduct removes a product by id.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrNotFound
	}
	return s.save(ctx, KeyProducts, kept)
}

// SetProductImage rewrites a product's image path.
func (s *Store) SetProductImage(ctx context.Context, id, image string) (models.AdminProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return models.AdminProduct{}, err
	}
	for i := range products {
		if products[i].ID == id {
			products[i].Image = image
			if err := s.save(ctx, KeyProducts, products); err != nil {
				return models.AdminProduct{}, err
			}
			return products[i], nil
		}
	}
	return models.AdminProduct{}, ErrNotFound
}

// Pages returns the editable content pages.
func (s *Store) Pages(ctx context.Context) ([]models.PageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPages(ctx)
}

// SavePage replaces the page with the same id.
func (s *Store) SavePage(ctx context.Context, page models.PageContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.loadPages(ctx)
	if err != nil {
		return err
	}
	for i := range pages {
		if pages[i].ID == page.ID {
			pages[i] = page
			return s.save(ctx, KeyPages, pages)
		}
	}
	return ErrNotFound
}

// Orders returns the admin-side orders, optionally filtered by status. An
// empty status or "all" returns everything.
func (s *Store) Orders(ctx context.Context, status string) ([]models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == "all" {
		return orders, nil
	}

	filtered := []models.AdminOrder{}
	for _, o := range orders {
		if string(o.Status) == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Order looks up one order by id.
func (s *Store) Order(ctx context.Context, id string) (models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return models.AdminOrder{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.AdminOrder{}, ErrNotFound
}

// CreateOrder appends a new order with a generated id, dated today and
// starting as pending. Used by checkout.
func (s *Store) CreateOrder(ctx context.Context, customerName, customerEmail, address, paymentMethod string, items []models.AdminOrderItem, total float64) (models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return models.AdminOrder{}, err
	}

	order := models.AdminOrder{
		ID:            fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Date:          time.Now().Format("2006-01-02"),
		Items:         items,
		Total:         total,
		Status:        models.AdminOrderPending,
		Address:       address,
		PaymentMethod: paymentMethod,
	}
	orders = append(orders, order)

	if err := s.save(ctx, KeyOrders, orders); err != nil {
		return models.AdminOrder{}, err
	}
	return order, nil
}

// UpdateOrderStatus moves an order to a new status.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.AdminOrderStatus) (models.AdminOrder, error) {
	if !models.ValidAdminOrderStatus(status) {
		return models.AdminOrder{}, ErrBadStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return models.AdminOrder{}, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := s.save(ctx, KeyOrders, orders); err != nil {
				return models.AdminOrder{}, err
			}
			return orders[i], nil
		}
	}
	return models.AdminOrder{}, ErrNotFound
}

// Settings returns the store settings, seeding defaults on first use.
func (s *Store) Settings(ctx context.Context) (models.StoreSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSettings(ctx)
}

// SaveSettings replaces the store settings wholesale.
func (s *Store) SaveSettings(ctx context.Context, settings models.StoreSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, KeySettings, settings)
}

func (s *Store) loadProducts(ctx context.Context) ([]models.AdminProduct, error) {
	var products []models.AdminProduct
	ok, err := s.load(ctx, KeyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		products = defaultProducts()
		if err := s.save(ctx, KeyProducts, products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (s *Store) loadPages(ctx context.Context) ([]models.PageContent, error) {
	var pages []models.PageContent
	ok, err := s.load(ctx, KeyPages, &pages)
	if err != nil {
		return nil, err
	}
	if !ok {
		pages = defaultPages()
		if err := s.save(ctx, KeyPages, pages); err != nil {
			return nil, err
		}
	}
	return pages, nil
}

func (s *Store) loadOrders(ctx context.Context) ([]models.AdminOrder, error) {
	var orders []models.AdminOrder
	ok, err := s.load(ctx, KeyOrders, &orders)
	if err != nil {
		return nil, err
	}
	if !ok {
		orders = defaultOrders()
		if err := s.save(ctx, KeyOrders, orders); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *Store) loadSettings(ctx context.Context) (models.StoreSettings, error) {
	var settings models.StoreSettings
	ok, err := s.load(ctx, KeySettings, &settings)
	if err != nil {
		return models.StoreSettings{}, err
	}
	if !ok {
		settings = DefaultSettings()
		if err := s.save(ctx, KeySettings, settings); err != nil {
			return models.StoreSettings{}, err
		}
	}
	return settings, nil
}

// load reads key into out. It returns false when the key is absent or its
// value does not parse, so the caller re-seeds defaults.
func (s *Store) load(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}
