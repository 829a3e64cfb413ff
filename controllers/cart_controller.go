package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rocketry-shop/catalog"
	"rocketry-shop/models"
	"rocketry-shop/services"
)

type CartController struct {
	Registry *services.Registry
	Catalog  *catalog.Catalog
}

func (ctrl *CartController) cartResponse(c *gin.Context) models.CartResponse {
	store := ctrl.Registry.Cart(c.Request.Context(), resolveScope(c))
	return models.CartResponse{
		Items:     store.Items(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Cart lines with derived total and item count
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storage scope id"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": ctrl.cartResponse(c)})
}

// AddItem godoc
// @Summary Add to cart
// @Description Add one unit of a catalog product, merging with an existing line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, ok := ctrl.Catalog.ByID(req.ProductID)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	store := ctrl.Registry.Cart(c.Request.Context(), resolveScope(c))
	store.AddItem(c.Request.Context(), product)

	c.JSON(200, gin.H{"success": true, "message": "Added to cart", "data": ctrl.cartResponse(c)})
}

// UpdateQuantity godoc
// @Summary Set line quantity
// @Description Set a cart line's quantity; 0 or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Allow quantity via query for form clients.
		qty, convErr := strconv.Atoi(c.Query("quantity"))
		if convErr != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		req.Quantity = qty
	}

	store := ctrl.Registry.Cart(c.Request.Context(), resolveScope(c))
	store.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)

	c.JSON(200, gin.H{"success": true, "data": ctrl.cartResponse(c)})
}

// RemoveItem godoc
// @Summary Remove a line
// @Description Remove a cart line; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	store := ctrl.Registry.Cart(c.Request.Context(), resolveScope(c))
	store.RemoveItem(c.Request.Context(), c.Param("id"))

	c.JSON(200, gin.H{"success": true, "data": ctrl.cartResponse(c)})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store := ctrl.Registry.Cart(c.Request.Context(), resolveScope(c))
	store.Clear(c.Request.Context())

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": ctrl.cartResponse(c)})
}
