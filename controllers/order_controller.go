package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"rocketry-shop/admin"
	"rocketry-shop/models"
	"rocketry-shop/services"
)

type OrderController struct {
	Registry *services.Registry
	Admin    *admin.Store
	Mailer   *models.EmailService
}

// Checkout godoc
// @Summary Checkout
// @Description Turn the scope's cart into a pending order and clear the cart
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	store := ctrl.Registry.Cart(c.Request.Context(), resolveScope(c))
	lines := store.Items()
	if len(lines) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Your cart is empty"})
		return
	}

	items := make([]models.AdminOrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.AdminOrderItem{
			ProductID: line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	order, err := ctrl.Admin.CreateOrder(
		c.Request.Context(),
		req.Name, req.Email, req.Address, req.PaymentMethod,
		items, store.Total(),
	)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	store.Clear(c.Request.Context())

	if ctrl.Mailer != nil {
		settings, serr := ctrl.Admin.Settings(c.Request.Context())
		if serr != nil {
			settings = admin.DefaultSettings()
		}
		go func() {
			if merr := ctrl.Mailer.SendOrderConfirmation(order, settings); merr != nil {
				log.Printf("Order confirmation email failed: %v", merr)
			}
		}()
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Thank you for your order. A confirmation has been sent to your email.",
		"data":    order,
	})
}
