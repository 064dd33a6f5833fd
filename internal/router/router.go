package router

import (
	"github.com/gin-gonic/gin"

	"github.com/onnuriprint/onnuriprint-backend/config"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/controller"
	"github.com/onnuriprint/onnuriprint-backend/internal/middleware"
)

type Router struct {
	quoteController *controller.QuoteController
	orderController *controller.OrderController
	leadController  *controller.LeadController
	authController  *controller.AuthController
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

func NewRouter(
	quoteController *controller.QuoteController,
	orderController *controller.OrderController,
	leadController *controller.LeadController,
	authController *controller.AuthController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		quoteController: quoteController,
		orderController: orderController,
		leadController:  leadController,
		authController:  authController,
		authMiddleware:  authMiddleware,
		config:          cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "ONNURIPRINT API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", r.quoteController.CalculateQuote)
			quotes.POST("/preview", r.quoteController.PreviewQuote)
			quotes.POST("/document", r.quoteController.DownloadQuoteDocument)
			quotes.POST("/email", r.quoteController.SendQuoteEmail)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("", r.authMiddleware.RequireAdmin(), r.orderController.ListOrders)
			orders.GET("/:number", r.authMiddleware.RequireAdmin(), r.orderController.GetOrder)
		}

		leads := v1.Group("/leads", r.authMiddleware.RequireAdmin())
		{
			leads.GET("", r.leadController.ListLeads)
			leads.GET("/keywords", r.leadController.TopKeywords)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
