package session

import (
	"rocketry-shop/models"
	"rocketry-shop/utils"
)

// Tables is the read-only account data the store consults. It is injected at
// construction so tests can run without a shared fixture.
type Tables struct {
	// Identities is the known-account table, looked up by email.
	Identities []models.Identity
	// Credentials maps email to an argon2-encoded password.
	Credentials map[string]string
	// Profiles maps identity id to extended profile data.
	Profiles map[string]models.Profile
	// Orders maps identity id to order history.
	Orders map[string][]models.Order
}

func (t Tables) identityByEmail(email string) *models.Identity {
	for i := range t.Identities {
		if t.Identities[i].Email == email {
			identity := t.Identities[i]
			return &identity
		}
	}
	return nil
}

// DemoTables returns the demonstration account data the storefront ships
// with: one admin and one teacher account, their profiles, and their order
// histories.
func DemoTables() Tables {
	adminHash, _ := utils.HashPassword("password123")
	teacherHash, _ := utils.HashPassword("teacher123")

	return Tables{
		Identities: []models.Identity{
			{ID: "1", Email: "admin@rocketryforschools.co.uk", Name: "Admin User", IsAdmin: true},
			{ID: "2", Email: "teacher@school.edu", Name: "Teacher Demo", IsAdmin: false},
		},
		Credentials: map[string]string{
			"admin@rocketryforschools.co.uk": adminHash,
			"teacher@school.edu":             teacherHash,
		},
		Profiles: map[string]models.Profile{
			"1": {
				Address: &models.Address{
					Street:   "123 School Lane",
					City:     "London",
					Postcode: "SW1A 1AA",
					Country:  "United Kingdom",
				},
				Phone:       "020 7123 4567",
				Preferences: &models.Preferences{EmailNotifications: true, Marketing: false},
			},
			"2": {
				Address: &models.Address{
					Street:   "45 Education Road",
					City:     "Manchester",
					Postcode: "M1 1XY",
					Country:  "United Kingdom",
				},
				Phone:       "0161 987 6543",
				Preferences: &models.Preferences{EmailNotifications: true, Marketing: true},
			},
		},
		Orders: map[string][]models.Order{
			"1": {
				{
					ID: "ORD-9876543", Date: "2023-11-05", Status: models.OrderDelivered, Total: 349.97,
					Items: []models.OrderItem{
						{ID: "1", Name: "School Rocketry Starter Pack", Quantity: 1, Price: 349.97},
					},
				},
				{
					ID: "ORD-8765432", Date: "2023-08-15", Status: models.OrderDelivered, Total: 129.95,
					Items: []models.OrderItem{
						{ID: "2", Name: "Klima D9-0 Rocket Motors (Pack of 5)", Quantity: 3, Price: 29.99},
						{ID: "3", Name: "Launch Controller Kit", Quantity: 1, Price: 39.98},
					},
				},
			},
			"2": {
				{
					ID: "ORD-1234567", Date: "2023-10-15", Status: models.OrderDelivered, Total: 149.97,
					Items: []models.OrderItem{
						{ID: "1", Name: "UKROC Competition Team Kit", Quantity: 1, Price: 149.97},
					},
				},
				{
					ID: "ORD-7654321", Date: "2023-09-22", Status: models.OrderShipped, Total: 58.98,
					Items: []models.OrderItem{
						{ID: "2", Name: "B6-4 Rocket Motors (Pack of 3)", Quantity: 2, Price: 15.99},
						{ID: "3", Name: "A8-3 Rocket Motors (Pack of 3)", Quantity: 2, Price: 12.99},
					},
				},
			},
		},
	}
}
