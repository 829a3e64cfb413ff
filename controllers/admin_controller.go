package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rocketry-shop/admin"
	"rocketry-shop/config"
	"rocketry-shop/models"
	"rocketry-shop/utils"
)

type AdminController struct {
	Admin *admin.Store
}

// Login godoc
// @Summary Admin panel login
// @Description Authenticate with the panel credentials and get an admin token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cfg := config.AppConfig
	if req.Username != cfg.AdminUsername || req.Password != cfg.AdminPassword {
		c.JSON(401, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}

	token, _ := utils.GenerateToken(uuid.NewString(), "admin-panel", "", true)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Welcome to the admin panel",
		"data":    gin.H{"token": token},
	})
}

// GetProducts godoc
// @Summary List managed products
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *AdminController) GetProducts(c *gin.Context) {
	products, err := ctrl.Admin.Products(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": products})
}

// CreateProduct godoc
// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.Admin.SaveProduct(c.Request.Context(), "", req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Product added", "data": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ProductRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.Admin.SaveProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product updated", "data": product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	if err := ctrl.Admin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product deleted"})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/{id}/image [post]
func (ctrl *AdminController) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	path, err := utils.SaveImage(c, file, "products")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, err := ctrl.Admin.SetProductImage(c.Request.Context(), c.Param("id"), "/uploads/"+path)
	if err != nil {
		utils.DeleteFile(path)
		ctrl.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Image updated", "data": product})
}

// GetPages godoc
// @Summary List content pages
// @Tags Admin - Pages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/pages [get]
func (ctrl *AdminController) GetPages(c *gin.Context) {
	pages, err := ctrl.Admin.Pages(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load pages"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": pages})
}

// UpdatePage godoc
// @Summary Update a content page
// @Tags Admin - Pages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param request body models.PageContent true "Page"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/pages/{id} [put]
func (ctrl *AdminController) UpdatePage(c *gin.Context) {
	var page models.PageContent
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	page.ID = c.Param("id")

	if err := ctrl.Admin.SavePage(c.Request.Context(), page); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Page saved", "data": page})
}

// GetOrders godoc
// @Summary List orders
// @Description Admin-side orders, optionally filtered by status
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *AdminController) GetOrders(c *gin.Context) {
	orders, err := ctrl.Admin.Orders(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": orders})
}

// GetOrderByID godoc
// @Summary Get order
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.Admin.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	order, err := ctrl.Admin.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order status updated", "data": order})
}

// GetSettings godoc
// @Summary Get store settings
// @Tags Admin - Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/settings [get]
func (ctrl *AdminController) GetSettings(c *gin.Context) {
	settings, err := ctrl.Admin.Settings(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load settings"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": settings})
}

// UpdateSettings godoc
// @Summary Update store settings
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.StoreSettings true "Settings"
// @Success 200 {object} models.Response
// @Router /admin/settings [put]
func (ctrl *AdminController) UpdateSettings(c *gin.Context) {
	var settings models.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.Admin.SaveSettings(c.Request.Context(), settings); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save settings"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Settings saved", "data": settings})
}

func (ctrl *AdminController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Not found"})
	case errors.Is(err, admin.ErrMissingFields):
		c.JSON(400, gin.H{"success": false, "message": "Please fill in all required fields"})
	case errors.Is(err, admin.ErrBadStatus):
		c.JSON(400, gin.H{"success": false, "message": "Unknown order status"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Storage error"})
	}
}
