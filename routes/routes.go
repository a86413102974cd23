package routes

import (
	"time"

	"lovestore-backend/handlers"
	"lovestore-backend/ledger"
	"lovestore-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, svc *ledger.Service) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db, Ledger: svc}
	productHandler := &handlers.ProductHandler{DB: db}
	wheelHandler := &handlers.WheelHandler{Ledger: svc}
	redeemHandler := &handlers.RedeemHandler{Ledger: svc}
	checkoutHandler := &handlers.CheckoutHandler{Ledger: svc}
	codeHandler := &handlers.CodeHandler{Ledger: svc}

	// One bucket per account; generous enough for humans, tight enough
	// to stop spin/checkout button mashing.
	spendLimiter := middleware.NewRateLimiter(10, 1*time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Public catalog
		api.GET("/products", productHandler.GetProducts)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// User profile with transaction history
		protected.GET("/auth/profile", authHandler.GetProfile)

		// Daily wheel
		protected.POST("/wheel/spin", spendLimiter.Middleware(), wheelHandler.Spin)
		protected.GET("/wheel/status", wheelHandler.Status)

		// Gift codes
		protected.POST("/redeem", redeemHandler.Redeem)

		// Checkout
		protected.POST("/checkout", spendLimiter.Middleware(), checkoutHandler.Checkout)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Catalog management
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		// Code management
		admin.GET("/codes", codeHandler.ListCodes)
		admin.POST("/codes", codeHandler.CreateCode)
		admin.DELETE("/codes/:code", codeHandler.DeleteCode)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
