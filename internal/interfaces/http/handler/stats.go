package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/storefront/backend/internal/application/report"
	"go.uber.org/zap"
)

// StatsHandler serves the admin dashboard figures
type StatsHandler struct {
	BaseHandler
	stats *reportapp.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(stats *reportapp.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler: NewBaseHandler(logger),
		stats:       stats,
	}
}

// RegisterRoutes registers stats routes on the admin group
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Dashboard)
}

// Dashboard handles GET /admin/stats
func (h *StatsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}
