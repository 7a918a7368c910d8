package services

import (
	"encoding/json"
	"time"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/logger"
	"gorm.io/gorm"
)

var auditDB *gorm.DB

// InitAuditLogger sets the database handle used by the package-level audit
// helpers. The audit trail is best-effort: failures are swallowed.
func InitAuditLogger(db *gorm.DB) {
	auditDB = db
}

func AuditInfo(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeAudit("info", module, action, message, userID, ip, userAgent, extra)
}

func AuditWarning(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeAudit("warning", module, action, message, userID, ip, userAgent, extra)
}

func writeAudit(level, module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	if auditDB == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.AuditLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	auditDB.Create(entry)
}

type AuditLogService struct {
	db *gorm.DB
}

func NewAuditLogService(db *gorm.DB) *AuditLogService {
	return &AuditLogService{db: db}
}

type AuditLogListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Level    string `form:"level"`
	Module   string `form:"module"`
	Search   string `form:"search"`
}

type AuditLogListResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Items    []models.AuditLog `json:"items"`
}

func (s *AuditLogService) List(req *AuditLogListRequest) (*AuditLogListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.AuditLog{})
	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}
	if req.Search != "" {
		query = query.Where("message LIKE ?", "%"+req.Search+"%")
	}

	var total int64
	query.Count(&total)

	var logs []models.AuditLog
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	return &AuditLogListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

// CleanupOldLogs deletes audit entries older than retentionDays. Returns
// the number of deleted records.
func (s *AuditLogService) CleanupOldLogs(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// StartAuditCleanupScheduler prunes old audit entries once on startup and
// then every 24 hours.
func StartAuditCleanupScheduler(db *gorm.DB, retentionDays int) {
	go func() {
		service := NewAuditLogService(db)

		runAuditCleanup(service, retentionDays)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			runAuditCleanup(service, retentionDays)
		}
	}()
}

func runAuditCleanup(service *AuditLogService, retentionDays int) {
	if retentionDays <= 0 {
		logger.Debug().Msg("audit log cleanup disabled")
		return
	}

	deleted, err := service.CleanupOldLogs(retentionDays)
	if err != nil {
		logger.Error().Err(err).Msg("audit log cleanup failed")
		return
	}

	if deleted > 0 {
		logger.Infof("cleaned up %d audit logs older than %d days", deleted, retentionDays)
	}
}
