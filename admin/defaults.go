package admin

import "rocketry-shop/models"

// Default datasets written on first access, matching what a fresh install of
// the storefront ships with.

func defaultProducts() []models.AdminProduct {
	return []models.AdminProduct{
		{
			ID:          "1",
			Name:        "A8-3 Rocket Motors",
			Description: "Entry-level rocket motors suitable for small model rockets.",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1614726365952-510103b9eda5?q=80&w=1064&auto=format&fit=crop&ixlib=rb-4.0.3",
			Category:    "motors",
			Shipping:    &models.ProductShipping{Weight: 0.1, Dimensions: "10x5x5", FreeShipping: true},
			Stock:       24,
		},
		{
			ID:          "2",
			Name:        "Beginner Rocket Kit",
			Description: "Perfect starter kit for students new to model rocketry.",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1614315517650-3771cf72d18a?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
			Category:    "kits",
			Shipping:    &models.ProductShipping{Weight: 0.5, Dimensions: "30x15x10", FreeShipping: true},
			Stock:       15,
		},
	}
}

func defaultPages() []models.PageContent {
	return []models.PageContent{
		{
			ID:    "1",
			Title: "Home Page",
			Path:  "/",
			Sections: []models.PageSection{
				{ID: "1-1", Type: "hero", Title: "Hero Section", Content: "Inspire Learning Through Rocketry", Enabled: true},
				{ID: "1-2", Type: "products", Title: "Featured Products", Content: "Explore our collection of educational model rocketry products", Enabled: true},
				{ID: "1-3", Type: "features", Title: "Features", Content: "Why choose our products for educational purposes", Enabled: true},
				{ID: "1-4", Type: "about", Title: "About Us", Content: "Our mission and vision for educational rocketry", Enabled: true},
			},
		},
		{
			ID:    "2",
			Title: "About Us",
			Path:  "/about-us",
			Sections: []models.PageSection{
				{ID: "2-1", Type: "hero", Title: "About Us Hero", Content: "Learn about our journey in educational rocketry", Enabled: true},
				{ID: "2-2", Type: "custom", Title: "Our Story", Content: "The story of how we started and our mission", Enabled: true},
			},
		},
	}
}

func defaultOrders() []models.AdminOrder {
	return []models.AdminOrder{
		{
			ID:            "ORD-001",
			CustomerName:  "John Smith",
			CustomerEmail: "john.smith@example.com",
			Date:          "2023-05-15",
			Items: []models.AdminOrderItem{
				{ProductID: "1", Name: "A8-3 Rocket Motors", Quantity: 2, Price: 12.99},
				{ProductID: "2", Name: "Beginner Rocket Kit", Quantity: 1, Price: 29.99},
			},
			Total:         55.97,
			Status:        models.AdminOrderDelivered,
			Address:       "123 Main St, London, UK",
			PaymentMethod: "Credit Card",
		},
		{
			ID:            "ORD-002",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah@schooldistrict.edu",
			Date:          "2023-06-02",
			Items: []models.AdminOrderItem{
				{ProductID: "5", Name: "Classroom Group Kit (30 Students)", Quantity: 1, Price: 299.99},
			},
			Total:         299.99,
			Status:        models.AdminOrderProcessing,
			Address:       "City School District, 456 Education Ln, Manchester, UK",
			PaymentMethod: "Bank Transfer",
		},
		{
			ID:            "ORD-003",
			CustomerName:  "David Williams",
			CustomerEmail: "david.williams@gmail.com",
			Date:          "2023-06-10",
			Items: []models.AdminOrderItem{
				{ProductID: "1", Name: "A8-3 Rocket Motors", Quantity: 3, Price: 12.99},
			},
			Total:         38.97,
			Status:        models.AdminOrderPending,
			Address:       "789 Park Avenue, Edinburgh, UK",
			PaymentMethod: "PayPal",
		},
	}
}

// DefaultSettings is exported so the mailer and checkout fall back to it when
// storage is unavailable.
func DefaultSettings() models.StoreSettings {
	return models.StoreSettings{
		General: models.GeneralSettings{
			StoreName:      "Rocketry For Schools",
			StoreEmail:     "contact@rocketryforschools.com",
			StoreLogo:      "/uploads/logo.png",
			CurrencySymbol: "£",
			PhoneNumber:    "+44 20 1234 5678",
		},
		Payment: models.PaymentSettings{},
		Shipping: models.ShippingSettings{
			FreeShippingThreshold: 50,
			StandardShippingRate:  3.99,
			ExpressShippingRate:   8.99,
		},
		Email: models.EmailSettings{
			OrderConfirmationTemplate:    "Thank you for your order! Your items will be shipped soon.",
			ShippingConfirmationTemplate: "Your order has been shipped and is on its way!",
			AdminNotificationEnabled:     true,
			AdminEmail:                   "admin@rocketryforschools.com",
		},
	}
}
