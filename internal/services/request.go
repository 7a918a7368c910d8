package services

import (
	"errors"
	"strings"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

type CreateRequestRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=200"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
	Category    string `json:"category" binding:"required"`
	Urgency     string `json:"urgency" binding:"required"`
}

type UpdateRequestRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=5,max=200"`
	Description *string `json:"description" binding:"omitempty,min=10,max=1000"`
	Category    *string `json:"category"`
	Urgency     *string `json:"urgency"`
}

type SearchRequestsRequest struct {
	Category string `form:"category"`
	Urgency  string `form:"urgency"`
	Search   string `form:"search"`
}

// Create posts a new help request for the given owner; status is always OPEN.
func (s *RequestService) Create(ownerID uint, req *CreateRequestRequest) (*models.Request, error) {
	category, ok := models.ParseRequestCategory(req.Category)
	if !ok {
		return nil, response.NewBadRequest("invalid category")
	}
	urgency, ok := models.ParseRequestUrgency(req.Urgency)
	if !ok {
		return nil, response.NewBadRequest("invalid urgency")
	}

	var owner models.User
	if err := s.db.First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	request := models.Request{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Urgency:     urgency,
		Status:      models.RequestStatusOpen,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	request.User = owner
	return &request, nil
}

// ListOpen returns all OPEN requests, newest first.
func (s *RequestService) ListOpen() ([]models.Request, error) {
	var requests []models.Request
	err := s.db.Preload("User").
		Where("status = ?", models.RequestStatusOpen).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Search filters OPEN requests by optional category, urgency, and a
// case-insensitive substring match against title or description. With no
// filters it degenerates to ListOpen.
func (s *RequestService) Search(req *SearchRequestsRequest) ([]models.Request, error) {
	query := s.db.Preload("User").Where("status = ?", models.RequestStatusOpen)

	if req.Category != "" {
		category, ok := models.ParseRequestCategory(req.Category)
		if !ok {
			return nil, response.NewBadRequest("invalid category")
		}
		query = query.Where("category = ?", category)
	}
	if req.Urgency != "" {
		urgency, ok := models.ParseRequestUrgency(req.Urgency)
		if !ok {
			return nil, response.NewBadRequest("invalid urgency")
		}
		query = query.Where("urgency = ?", urgency)
	}
	if term := strings.TrimSpace(req.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var requests []models.Request
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (s *RequestService) FindByID(id uint) (*models.Request, error) {
	var request models.Request
	if err := s.db.Preload("User").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("request not found")
		}
		return nil, err
	}
	return &request, nil
}

// ListByUser returns all requests owned by the user, newest first.
func (s *RequestService) ListByUser(userID uint) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Update edits an OPEN request. Only provided fields change.
func (s *RequestService) Update(id uint, req *UpdateRequestRequest) (*models.Request, error) {
	request, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if request.Status != models.RequestStatusOpen {
		return nil, response.NewConflict("can only edit open requests")
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Category != nil {
		category, ok := models.ParseRequestCategory(*req.Category)
		if !ok {
			return nil, response.NewBadRequest("invalid category")
		}
		request.Category = category
	}
	if req.Urgency != nil {
		urgency, ok := models.ParseRequestUrgency(*req.Urgency)
		if !ok {
			return nil, response.NewBadRequest("invalid urgency")
		}
		request.Urgency = urgency
	}

	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// Delete removes an OPEN request.
func (s *RequestService) Delete(id uint) error {
	request, err := s.FindByID(id)
	if err != nil {
		return err
	}

	if request.Status != models.RequestStatusOpen {
		return response.NewConflict("can only delete open requests")
	}

	return s.db.Delete(&models.Request{}, id).Error
}

// Cancel transitions an OPEN request to CANCELLED. The conditional update
// keeps a concurrent accept from being overwritten.
func (s *RequestService) Cancel(id uint) (*models.Request, error) {
	request, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if request.Status != models.RequestStatusOpen {
		return nil, response.NewConflict("can only cancel open requests")
	}

	result := s.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", id, models.RequestStatusOpen).
		Update("status", models.RequestStatusCancelled)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, response.NewConflict("can only cancel open requests")
	}

	request.Status = models.RequestStatusCancelled
	return request, nil
}
