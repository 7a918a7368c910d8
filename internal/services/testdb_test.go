package services

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/response"
)

// newTestDB opens an in-memory database with the full schema migrated.
// The connection pool is capped at one so every query sees the same
// in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Assignment{},
		&models.Review{},
		&models.RefreshToken{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return &user
}

func createTestRequest(t *testing.T, db *gorm.DB, ownerID uint, title string, status models.RequestStatus) *models.Request {
	t.Helper()

	request := models.Request{
		UserID:      ownerID,
		Title:       title,
		Description: "description for " + title,
		Category:    models.CategoryHousehold,
		Urgency:     models.UrgencyMedium,
		Status:      status,
	}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("failed to create request %q: %v", title, err)
	}
	return &request
}

// assertStatus fails unless err is an *response.AppError carrying the given
// HTTP status.
func assertStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with status %d, got nil", wantStatus)
	}
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != wantStatus {
		t.Fatalf("error status = %d, expected %d (message: %s)", appErr.HTTPStatus, wantStatus, appErr.Message)
	}
}
