package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/neighborly/helpdesk/internal/models"
)

// HealthHandler provides the service health endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of the service and its database.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	var openRequests int64
	models.GetDB().Model(&models.Request{}).
		Where("status = ?", models.RequestStatusOpen).
		Count(&openRequests)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "helpdesk",
		"components": gin.H{
			"database":      dbStatus,
			"open_requests": openRequests,
		},
	})
}
