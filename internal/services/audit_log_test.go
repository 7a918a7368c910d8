package services

import (
	"testing"
	"time"

	"github.com/neighborly/helpdesk/internal/models"
)

func seedAuditLog(t *testing.T, service *AuditLogService, level, module, message string, age time.Duration) {
	t.Helper()

	entry := models.AuditLog{
		Level:     level,
		Module:    module,
		Action:    "Test",
		Message:   message,
		CreatedAt: time.Now().Add(-age),
	}
	if err := service.db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to seed audit log: %v", err)
	}
}

func TestAuditLogList_Filters(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditLogService(db)

	seedAuditLog(t, service, "info", "request", "User created request", 0)
	seedAuditLog(t, service, "info", "auth", "User logged in", 0)
	seedAuditLog(t, service, "warning", "auth", "Login throttled", 0)

	resp, err := service.List(&AuditLogListRequest{Module: "auth"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, expected 2", resp.Total)
	}

	resp, err = service.List(&AuditLogListRequest{Level: "warning"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, expected 1", resp.Total)
	}

	resp, err = service.List(&AuditLogListRequest{Search: "logged in"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, expected 1", resp.Total)
	}
}

func TestAuditLogList_Pagination(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditLogService(db)

	for i := 0; i < 25; i++ {
		seedAuditLog(t, service, "info", "request", "entry", 0)
	}

	resp, err := service.List(&AuditLogListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Page != 1 || resp.PageSize != 20 {
		t.Errorf("defaults: page=%d size=%d, expected 1/20", resp.Page, resp.PageSize)
	}
	if len(resp.Items) != 20 {
		t.Errorf("Items len = %d, expected 20", len(resp.Items))
	}
	if resp.Total != 25 {
		t.Errorf("Total = %d, expected 25", resp.Total)
	}

	resp, err = service.List(&AuditLogListRequest{Page: 2, PageSize: 20})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Items) != 5 {
		t.Errorf("page 2 Items len = %d, expected 5", len(resp.Items))
	}
}

func TestCleanupOldLogs(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditLogService(db)

	seedAuditLog(t, service, "info", "request", "old entry", 40*24*time.Hour)
	seedAuditLog(t, service, "info", "request", "fresh entry", time.Hour)

	deleted, err := service.CleanupOldLogs(30)
	if err != nil {
		t.Fatalf("CleanupOldLogs failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, expected 1", deleted)
	}

	var remaining int64
	if err := db.Model(&models.AuditLog{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("remaining = %d, expected 1", remaining)
	}
}

func TestCleanupOldLogs_DisabledRetention(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditLogService(db)

	seedAuditLog(t, service, "info", "request", "old entry", 400*24*time.Hour)

	deleted, err := service.CleanupOldLogs(0)
	if err != nil {
		t.Fatalf("CleanupOldLogs failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, expected 0 when retention disabled", deleted)
	}
}
