// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neha-Singh-j/E-commerce/internal/config"
	"github.com/Neha-Singh-j/E-commerce/internal/handlers"
	"github.com/Neha-Singh-j/E-commerce/internal/middleware"
	"github.com/Neha-Singh-j/E-commerce/internal/services"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
	"github.com/Neha-Singh-j/E-commerce/internal/utils"
)

// Initialize wires the full request pipeline around the given store. Tests
// pass an in-memory store; production passes the database-backed one.
func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	paymentService := services.NewPaymentService(cfg)

	authService := services.NewAuthService(st, cfg)
	catalogService := services.NewCatalogService(st)
	cartService := services.NewCartService(st)
	orderService := services.NewOrderService(st, paymentService)
	reviewService := services.NewReviewService(st)
	wishlistService := services.NewWishlistService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	pageHandler := handlers.NewPageHandler()

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	limiters := middleware.NewRateLimiters(cfg.RateLimit)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(limiters.General())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(limiters.Auth())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/categories", productHandler.GetCategories)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/reviews", reviewHandler.ListReviews)
			products.POST("/:id/reviews", middleware.AuthRequired(), reviewHandler.AddReview)

			// Seller routes
			sellers := products.Group("")
			sellers.Use(middleware.AuthRequired(), middleware.SellerRequired())
			{
				sellers.POST("", productHandler.CreateProduct)
				sellers.PUT("/:id", productHandler.UpdateProduct)
				sellers.DELETE("/:id", productHandler.DeleteProduct)
				sellers.POST("/images", limiters.Upload(), productHandler.UploadImage)
			}
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.GET("/count", cartHandler.GetCount)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.Checkout)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.AuthRequired())
		{
			wishlist.GET("", wishlistHandler.ListWishlist)
			wishlist.POST("/:productId", wishlistHandler.ToggleWishlist)
		}

		// Informational pages
		pages := v1.Group("/pages")
		{
			pages.GET("/:slug", pageHandler.GetPage)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
