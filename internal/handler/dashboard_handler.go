package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/service"
	"auction-admin/internal/session"
	"auction-admin/pkg/logger"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	sessions  *session.Manager
}

func NewDashboardHandler(dashboard *service.DashboardService, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		sessions:  sessions,
	}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	counts, err := h.dashboard.Counts()
	if err != nil {
		logger.Log.Error("Failed to aggregate dashboard counts", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	render(c, h.sessions, "dashboard.html", gin.H{"Counts": counts})
}
