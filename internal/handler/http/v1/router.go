package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сообщения об опасностях
	hazards := api.Group("/hazards")
	{
		hazards.POST("", h.reportHazard)
		hazards.GET("/nearby", h.nearbyHazards)
		hazards.GET("/:id", h.getHazard)
		hazards.POST("/:id/vote", h.voteHazard)
	}

	// Сообщения о трафике
	traffic := api.Group("/traffic")
	{
		traffic.POST("", h.reportTraffic)
		traffic.GET("/heatmap", h.trafficHeatmap)
	}

	api.POST("/routes/annotate", h.annotateRoute)

	// Административные маршруты, только с API-ключом
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/hazards/sweep", h.sweepHazards)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
