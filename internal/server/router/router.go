package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(salesH *handlers.SalesHandler, analyticsH *handlers.AnalyticsHandler, inventoryH *handlers.InventoryHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api", handlers.RequireUser())
	{
		api.POST("/sales", handlers.RequireRole(models.RoleRetailer), salesH.Submit)
		api.GET("/sales", salesH.List)
		api.DELETE("/sales/:id", salesH.Delete)
		api.GET("/available-years", salesH.AvailableYears)
		api.GET("/defaults", salesH.Defaults)

		api.GET("/analytics", analyticsH.Summary)
		api.GET("/trends", analyticsH.Trends)
		api.GET("/correlations", analyticsH.Correlations)
		api.GET("/market-comparison", analyticsH.MarketComparison)
		api.GET("/data-quality", analyticsH.DataQuality)
		api.POST("/forecast", analyticsH.Forecast)
		api.GET("/progress", analyticsH.Progress)
		api.POST("/predict", analyticsH.Predict)

		retailer := api.Group("/retailer/inventory", handlers.RequireRole(models.RoleRetailer))
		{
			retailer.GET("", inventoryH.List)
			retailer.POST("", inventoryH.Create)
			retailer.GET("/:id", inventoryH.Get)
			retailer.PUT("/:id", inventoryH.Update)
			retailer.PATCH("/:id", inventoryH.Update)
			retailer.DELETE("/:id", inventoryH.Delete)
		}

		api.GET("/inventory", handlers.RequireRole(models.RoleConsumer), inventoryH.Browse)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
