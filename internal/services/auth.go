package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/neighborly/helpdesk/internal/config"
	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/internal/utils"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	AccessToken     string       `json:"access_token"`
	AccessExpireAt  time.Time    `json:"access_expire_at"`
	RefreshToken    string       `json:"refresh_token"`
	RefreshExpireAt time.Time    `json:"refresh_expire_at"`
	User            *models.User `json:"user"`
}

// Register creates a new member. Emails are stored lower-cased so the
// uniqueness check is case-insensitive.
func (s *AuthService) Register(req *RegisterRequest, clientIP, userAgent string) (*AuthResult, error) {
	role := models.RoleResident
	if req.Role != "" {
		parsed, ok := models.ParseUserRole(req.Role)
		if !ok {
			return nil, response.NewBadRequest("invalid role")
		}
		role = parsed
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return s.issueTokens(&user, clientIP, userAgent)
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest, clientIP, userAgent string) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	return s.issueTokens(&user, clientIP, userAgent)
}

type RefreshResult struct {
	AccessToken     string    `json:"access_token"`
	AccessExpireAt  time.Time `json:"access_expire_at"`
	RefreshToken    string    `json:"refresh_token"`
	RefreshExpireAt time.Time `json:"refresh_expire_at"`
}

// Refresh rotates a refresh token: the old row is revoked and linked to
// its replacement, and a fresh access token is minted.
func (s *AuthService) Refresh(refreshToken, clientIP, userAgent string) (*RefreshResult, error) {
	if refreshToken == "" {
		return nil, response.NewUnauthorized("refresh token required")
	}

	hash := hashRefreshToken(refreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ?", hash).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid refresh token")
		}
		return nil, err
	}

	if stored.RevokedAt != nil {
		return nil, response.NewUnauthorized("refresh token revoked")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, response.NewUnauthorized("refresh token expired")
	}

	var user models.User
	if err := s.db.First(&user, stored.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("user not found")
		}
		return nil, err
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Name, string(user.Role), s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	newToken, newHash, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newRefresh := models.RefreshToken{
		UserID:      user.ID,
		TokenHash:   newHash,
		ExpiresAt:   now.Add(time.Duration(s.jwtConfig.RefreshExpireHour) * time.Hour),
		CreatedByIP: clientIP,
		UserAgent:   userAgent,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newRefresh).Error; err != nil {
			return err
		}
		return tx.Model(&stored).Updates(map[string]interface{}{
			"revoked_at":           now,
			"replaced_by_token_id": newRefresh.ID,
		}).Error
	}); err != nil {
		return nil, err
	}

	return &RefreshResult{
		AccessToken:     accessToken,
		AccessExpireAt:  now.Add(time.Duration(s.jwtConfig.ExpireHour) * time.Hour),
		RefreshToken:    newToken,
		RefreshExpireAt: newRefresh.ExpiresAt,
	}, nil
}

// RevokeRefreshToken invalidates a refresh token on logout. Unknown tokens
// are ignored.
func (s *AuthService) RevokeRefreshToken(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	hash := hashRefreshToken(refreshToken)
	now := time.Now()
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

// CleanupExpiredTokens deletes refresh tokens that expired or were revoked
// more than a day ago. Returns the number of deleted rows.
func (s *AuthService) CleanupExpiredTokens() (int64, error) {
	cutoff := time.Now().Add(-24 * time.Hour)
	result := s.db.Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}

func (s *AuthService) issueTokens(user *models.User, clientIP, userAgent string) (*AuthResult, error) {
	accessToken, err := utils.GenerateToken(user.ID, user.Name, string(user.Role), s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	refreshExpireAt := now.Add(time.Duration(s.jwtConfig.RefreshExpireHour) * time.Hour)
	record := models.RefreshToken{
		UserID:      user.ID,
		TokenHash:   refreshHash,
		ExpiresAt:   refreshExpireAt,
		CreatedByIP: clientIP,
		UserAgent:   userAgent,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:     accessToken,
		AccessExpireAt:  now.Add(time.Duration(s.jwtConfig.ExpireHour) * time.Hour),
		RefreshToken:    refreshToken,
		RefreshExpireAt: refreshExpireAt,
		User:            user,
	}, nil
}

func generateRefreshToken() (token string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err = rand.Read(randomBytes); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(randomBytes)
	tokenHash = hashRefreshToken(token)
	return token, tokenHash, nil
}

func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
