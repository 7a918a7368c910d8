package services

import (
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/neighborly/helpdesk/internal/config"
	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/internal/utils"
)

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	utils.SetJWTSecret("test-secret")
	db := newTestDB(t)
	jwtCfg := &config.JWTConfig{
		Secret:            "test-secret",
		ExpireHour:        1,
		RefreshExpireHour: 24,
	}
	return NewAuthService(db, jwtCfg), db
}

func TestRegister_DefaultsToResident(t *testing.T) {
	service, _ := newTestAuthService(t)

	result, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "password123",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if result.User.Role != models.RoleResident {
		t.Errorf("Role = %q, expected %q", result.User.Role, models.RoleResident)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken should not be empty")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken should not be empty")
	}
	if result.User.Password == "password123" {
		t.Error("password should be stored hashed, not in plaintext")
	}
}

func TestRegister_LowercasesEmail(t *testing.T) {
	service, _ := newTestAuthService(t)

	result, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "Alice@Example.COM",
		Password: "password123",
	}, "", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if result.User.Email != "alice@example.com" {
		t.Errorf("Email = %q, expected %q", result.User.Email, "alice@example.com")
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "password123",
	}, "", "")
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err = service.Register(&RegisterRequest{
		Name:     "Another Alice",
		Email:    "ALICE@example.com",
		Password: "password456",
	}, "", "")
	assertStatus(t, err, http.StatusConflict)
}

func TestRegister_InvalidRole(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Register(&RegisterRequest{
		Name:     "Bob Smith",
		Email:    "bob@example.com",
		Password: "password123",
		Role:     "ADMIN",
	}, "", "")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestRegister_VolunteerRole(t *testing.T) {
	service, _ := newTestAuthService(t)

	result, err := service.Register(&RegisterRequest{
		Name:     "Bob Smith",
		Email:    "bob@example.com",
		Password: "password123",
		Role:     "volunteer",
	}, "", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if result.User.Role != models.RoleVolunteer {
		t.Errorf("Role = %q, expected %q", result.User.Role, models.RoleVolunteer)
	}
}

func TestLogin_Success(t *testing.T) {
	service, _ := newTestAuthService(t)

	if _, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "password123",
	}, "", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := service.Login(&LoginRequest{
		Email:    "Alice@Example.com",
		Password: "password123",
	}, "", "")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.User.Name != "Alice Johnson" {
		t.Errorf("Name = %q, expected %q", result.User.Name, "Alice Johnson")
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	service, _ := newTestAuthService(t)

	if _, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "password123",
	}, "", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPass := service.Login(&LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	}, "", "")
	assertStatus(t, wrongPass, http.StatusUnauthorized)

	_, unknownEmail := service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	}, "", "")
	assertStatus(t, unknownEmail, http.StatusUnauthorized)

	if wrongPass.Error() != unknownEmail.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPass, unknownEmail)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	service, db := newTestAuthService(t)

	registered, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "password123",
	}, "", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	refreshed, err := service.Refresh(registered.RefreshToken, "", "")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Error("Refresh should issue a new refresh token")
	}
	if refreshed.AccessToken == "" {
		t.Error("AccessToken should not be empty")
	}

	// The replaced token is revoked and cannot be used again.
	_, err = service.Refresh(registered.RefreshToken, "", "")
	assertStatus(t, err, http.StatusUnauthorized)

	var tokens int64
	if err := db.Model(&models.RefreshToken{}).Count(&tokens).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if tokens != 2 {
		t.Errorf("refresh token rows = %d, expected 2", tokens)
	}
}

func TestRefresh_UnknownToken(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Refresh("deadbeef", "", "")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestRevokeRefreshToken(t *testing.T) {
	service, _ := newTestAuthService(t)

	registered, err := service.Register(&RegisterRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "password123",
	}, "", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := service.RevokeRefreshToken(registered.RefreshToken); err != nil {
		t.Fatalf("RevokeRefreshToken failed: %v", err)
	}

	_, err = service.Refresh(registered.RefreshToken, "", "")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestCleanupExpiredTokens(t *testing.T) {
	service, db := newTestAuthService(t)

	user := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)

	expired := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: "expired-hash",
		ExpiresAt: time.Now().Add(-48 * time.Hour),
	}
	active := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: "active-hash",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("create expired token failed: %v", err)
	}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("create active token failed: %v", err)
	}

	deleted, err := service.CleanupExpiredTokens()
	if err != nil {
		t.Fatalf("CleanupExpiredTokens failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, expected 1", deleted)
	}

	var remaining int64
	if err := db.Model(&models.RefreshToken{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("remaining tokens = %d, expected 1", remaining)
	}
}
