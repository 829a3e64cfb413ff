package controllers

import (
	"github.com/gin-gonic/gin"

	"rocketry-shop/catalog"
)

type ProductController struct {
	Catalog *catalog.Catalog
}

// GetAllProducts godoc
// @Summary List products
// @Description Full storefront catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": ctrl.Catalog.All()})
}

// GetFeaturedProducts godoc
// @Summary Featured products
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": ctrl.Catalog.Featured()})
}

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, ok := ctrl.Catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": product})
}
