package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rocketry-shop/admin"
	"rocketry-shop/catalog"
	"rocketry-shop/controllers"
	"rocketry-shop/middleware"
	"rocketry-shop/models"
	"rocketry-shop/services"
)

// Deps carries the constructed application state into the route table.
type Deps struct {
	Registry *services.Registry
	Catalog  *catalog.Catalog
	Admin    *admin.Store
	Mailer   *models.EmailService
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	authCtrl := &controllers.AuthController{Registry: deps.Registry}
	cartCtrl := &controllers.CartController{Registry: deps.Registry, Catalog: deps.Catalog}
	productCtrl := &controllers.ProductController{Catalog: deps.Catalog}
	orderCtrl := &controllers.OrderController{Registry: deps.Registry, Admin: deps.Admin, Mailer: deps.Mailer}
	adminCtrl := &controllers.AdminController{Admin: deps.Admin}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/featured", productCtrl.GetFeaturedProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

	router.POST("/checkout", orderCtrl.Checkout)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.GET("/auth/orders", authCtrl.GetOrders)
	}

	router.POST("/admin/login", adminCtrl.Login)

	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/products", adminCtrl.GetProducts)
		adminGroup.POST("/products", adminCtrl.CreateProduct)
		adminGroup.PATCH("/products/:id", adminCtrl.UpdateProduct)
		adminGroup.DELETE("/products/:id", adminCtrl.DeleteProduct)
		adminGroup.POST("/products/:id/image", adminCtrl.UploadProductImage)

		adminGroup.GET("/pages", adminCtrl.GetPages)
		adminGroup.PUT("/pages/:id", adminCtrl.UpdatePage)

		adminGroup.GET("/orders", adminCtrl.GetOrders)
		adminGroup.GET("/orders/:id", adminCtrl.GetOrderByID)
		adminGroup.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)

		adminGroup.GET("/settings", adminCtrl.GetSettings)
		adminGroup.PUT("/settings", adminCtrl.UpdateSettings)
	}

	router.Static("/uploads", "./uploads")
}
