package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itemtag-backend/internal/shared/middleware"
	"itemtag-backend/internal/shared/response"
	"itemtag-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/", rootHandler(c))
	router.GET("/health", healthCheckHandler(c))

	root := &router.RouterGroup
	c.ItemHandler.RegisterRoutes(root)
	c.TagHandler.RegisterRoutes(root)

	return router
}

// ========================================
// SYSTEM ROUTES
// ========================================
func rootHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{
			"message": "Welcome to " + c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		components, ok := c.HealthCheck(ctx.Request.Context())
		if !ok {
			response.ErrorWithDetails(ctx, http.StatusServiceUnavailable,
				response.CodeServiceUnavail, "Service unavailable", components)
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":     "healthy",
			"components": components,
		})
	}
}
