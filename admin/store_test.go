package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketry-shop/models"
	"rocketry-shop/storage"
)

func newStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	return NewStore(kv), kv
}

func TestSeedsDefaultsOnFirstAccess(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	orders, err := s.Orders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	pages, err := s.Pages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 2)

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rocketry For Schools", settings.General.StoreName)
	assert.Equal(t, "£", settings.General.CurrencySymbol)
	assert.Equal(t, 50.0, settings.Shipping.FreeShippingThreshold)

	// Seeds are written back to storage.
	for _, key := range []string{KeyProducts, KeyPages, KeyOrders, KeySettings} {
		_, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
	}
}

func TestCorruptValueReseeded(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyProducts, []byte("not json")))

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductCRUD(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.SaveProduct(ctx, "", models.ProductRequest{Name: "Incomplete"})
	assert.ErrorIs(t, err, ErrMissingFields)

	created, err := s.SaveProduct(ctx, "", models.ProductRequest{
		Name:        "Launch Pad",
		Description: "Sturdy launch pad for classroom use.",
		Price:       44.99,
		Image:       "https://example.com/pad.jpg",
		Category:    "kits",
		Stock:       8,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	updated, err := s.SaveProduct(ctx, created.ID, models.ProductRequest{
		Name:        "Launch Pad Pro",
		Description: "Sturdy launch pad for classroom use.",
		Price:       54.99,
		Image:       "https://example.com/pad.jpg",
		Category:    "kits",
	})
	require.NoError(t, err)
	assert.Equal(t, "Launch Pad Pro", updated.Name)

	_, err = s.SaveProduct(ctx, "missing", models.ProductRequest{
		Name: "X", Description: "Y", Price: 1, Image: "Z",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteProduct(ctx, created.ID))
	assert.ErrorIs(t, s.DeleteProduct(ctx, created.ID), ErrNotFound)
}

func TestSetProductImage(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	product, err := s.SetProductImage(ctx, "1", "/uploads/products/new.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/products/new.png", product.Image)

	_, err = s.SetProductImage(ctx, "missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderStatusAndFilter(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	order, err := s.UpdateOrderStatus(ctx, "ORD-003", models.AdminOrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.AdminOrderShipped, order.Status)

	shipped, err := s.Orders(ctx, "shipped")
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, "ORD-003", shipped[0].ID)

	all, err := s.Orders(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = s.UpdateOrderStatus(ctx, "ORD-003", "launched")
	assert.ErrorIs(t, err, ErrBadStatus)

	_, err = s.UpdateOrderStatus(ctx, "ORD-999", models.AdminOrderShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	order, err := s.CreateOrder(ctx,
		"Jane Doe", "jane@example.com", "1 High St, Leeds, UK", "Credit Card",
		[]models.AdminOrderItem{{ProductID: "1", Name: "A8-3 Rocket Motors", Quantity: 2, Price: 12.99}},
		25.98,
	)
	require.NoError(t, err)
	assert.Equal(t, models.AdminOrderPending, order.Status)
	assert.NotEmpty(t, order.Date)

	got, err := s.Order(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CustomerName)

	orders, err := s.Orders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, orders, 4)
}

func TestSavePage(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	pages, err := s.Pages(ctx)
	require.NoError(t, err)
	page := pages[0]
	page.Title = "Home (updated)"

	require.NoError(t, s.SavePage(ctx, page))

	pages, err = s.Pages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Home (updated)", pages[0].Title)

	assert.ErrorIs(t, s.SavePage(ctx, models.PageContent{ID: "missing"}), ErrNotFound)
}

func TestSettingsRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	settings.Shipping.FreeShippingThreshold = 75
	settings.Email.AdminNotificationEnabled = false

	require.NoError(t, s.SaveSettings(ctx, settings))

	got, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75.0, got.Shipping.FreeShippingThreshold)
	assert.False(t, got.Email.AdminNotificationEnabled)
}
