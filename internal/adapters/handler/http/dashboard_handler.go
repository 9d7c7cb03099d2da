package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ritmolab/ritmo-engine/internal/adapters/handler/http/middleware"
	"github.com/ritmolab/ritmo-engine/internal/core/domain"
	"github.com/ritmolab/ritmo-engine/internal/core/services"
)

// DashboardHandler exposes the read model. Every endpoint accepts an
// optional `now` query parameter (RFC3339) so clients and tests can pin
// the reference instant; it defaults to the server clock.
type DashboardHandler struct {
	dashboards *services.DashboardService
	xp         *services.XPService
}

func NewDashboardHandler(dashboards *services.DashboardService, xp *services.XPService) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
		xp:         xp,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/stats/habits/:id", h.GetHabitStats)
	r.GET("/stats/heatmap", h.GetHeatmap)
	r.GET("/stats/weekdays", h.GetWeekdays)
	r.GET("/xp", h.GetXP)
}

func resolveNow(c *gin.Context) (time.Time, bool) {
	nowStr := c.Query("now")
	if nowStr == "" {
		return time.Now().UTC(), true
	}

	now, err := time.Parse(time.RFC3339, nowStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid now format, expected RFC3339"})
		return time.Time{}, false
	}
	return now, true
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now, ok := resolveNow(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboards.Get(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) GetHabitStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now, ok := resolveNow(c)
	if !ok {
		return
	}

	stats, err := h.dashboards.HabitStats(c.Request.Context(), c.Param("id"), userID, now)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		case errors.Is(err, domain.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "habit does not belong to user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute habit stats"})
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetHeatmap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now, ok := resolveNow(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboards.Get(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build heatmap"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"heatmap": dashboard.Heatmap})
}

func (h *DashboardHandler) GetWeekdays(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now, ok := resolveNow(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboards.Get(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build weekday stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weekdays": dashboard.Weekdays})
}

func (h *DashboardHandler) GetXP(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now, ok := resolveNow(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboards.Get(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute xp summary"})
		return
	}

	// Snapshots are cached per UTC day, but XP moves intraday; the level
	// state reads the authoritative total so fresh awards show immediately.
	level, err := h.xp.Recompute(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute xp summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"xp":    dashboard.XP,
		"level": level,
	})
}
