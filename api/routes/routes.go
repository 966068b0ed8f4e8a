package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhababook/restro-backend/internal/config"
	"github.com/dhababook/restro-backend/internal/handlers"
	"github.com/dhababook/restro-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	CustomerHandler *handlers.CustomerHandler
	OrderHandler    *handlers.OrderHandler
	CampaignHandler *handlers.CampaignHandler
	TableHandler    *handlers.TableHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Table QR codes are scanned by guests, no token involved
		public.GET("/tables/:id/qr", deps.TableHandler.GetTableQR)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		customers := protected.Group("/customers")
		{
			customers.GET("", deps.CustomerHandler.GetAllCustomers)
			customers.GET("/count", deps.CustomerHandler.GetCustomerCount)
			customers.GET("/:id", deps.CustomerHandler.GetCustomerByID)
			customers.GET("/phone/:phone", deps.CustomerHandler.GetCustomerByPhone)
			customers.POST("", deps.CustomerHandler.CreateCustomer)
			customers.PUT("/:id", deps.CustomerHandler.UpdateCustomer)
			customers.DELETE("/:id", deps.CustomerHandler.DeleteCustomer)
			customers.POST("/:id/opt-out", deps.CustomerHandler.OptOut)
		}

		orders := protected.Group("/orders")
		{
			orders.GET("/count", deps.OrderHandler.GetOrderCount)
			orders.GET("/customer/:id", deps.OrderHandler.GetOrdersByCustomer)
			orders.POST("", deps.OrderHandler.RecordOrder)
		}

		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.GetCampaigns)
			campaigns.GET("/count", deps.CampaignHandler.GetCampaignCount)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.POST("/send", deps.CampaignHandler.SendCampaign)
			campaigns.POST("/schedule", deps.CampaignHandler.ScheduleCampaign)
		}
	}

	return router
}
