package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	internalapi "sitegen_ai_server/internal/api"
)

// RegisterRoutes sets up the API endpoints.
func RegisterRoutes(router *gin.Engine, h *internalapi.APIHandler) {
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateSite) // Generate a full project tree
	}

	templateGroup := router.Group("/template")
	{
		templateGroup.POST("/resolve", h.ResolveTemplate) // Resolve a single template
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
