package models

// OrderStatus is the customer-facing order-history vocabulary.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// OrderItem is a line of a historical order.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a read-only order-history record shown on the account page.
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Status OrderStatus `json:"status"`
	Total  float64     `json:"total"`
	Items  []OrderItem `json:"items"`
}

// AdminOrderStatus is the admin panel's order vocabulary. It is a separate
// dataset from the customer order history and is never reconciled with it.
type AdminOrderStatus string

const (
	AdminOrderPending    AdminOrderStatus = "pending"
	AdminOrderProcessing AdminOrderStatus = "processing"
	AdminOrderShipped    AdminOrderStatus = "shipped"
	AdminOrderDelivered  AdminOrderStatus = "delivered"
	AdminOrderCancelled  AdminOrderStatus = "cancelled"
)

// ValidAdminOrderStatus reports whether s is one of the known statuses.
func ValidAdminOrderStatus(s AdminOrderStatus) bool {
	switch s {
	case AdminOrderPending, AdminOrderProcessing, AdminOrderShipped,
		AdminOrderDelivered, AdminOrderCancelled:
		return true
	}
	return false
}

// AdminOrderItem is a line of an admin-side order.
type AdminOrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// AdminOrder is an order record managed by the admin panel and created by
// checkout.
type AdminOrder struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Date          string           `json:"date"`
	Items         []AdminOrderItem `json:"items"`
	Total         float64          `json:"total"`
	Status        AdminOrderStatus `json:"status"`
	Address       string           `json:"address"`
	PaymentMethod string           `json:"paymentMethod"`
}
