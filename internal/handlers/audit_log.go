package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/neighborly/helpdesk/internal/services"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type AuditLogHandler struct {
	auditLogService *services.AuditLogService
}

func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: services.NewAuditLogService(db),
	}
}

// List returns the audit trail, paginated
// GET /api/audit-logs
func (h *AuditLogHandler) List(c *gin.Context) {
	var req services.AuditLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.auditLogService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
