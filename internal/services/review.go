package services

import (
	"errors"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type ReviewService struct {
	db          *gorm.DB
	userService *UserService
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		db:          db,
		userService: NewUserService(db),
	}
}

type SubmitReviewRequest struct {
	VolunteerID uint   `json:"volunteer_id" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"max=1000"`
}

// Submit records feedback for a completed request and recomputes the
// volunteer's aggregate rating.
func (s *ReviewService) Submit(requestID uint, req *SubmitReviewRequest) (*models.Review, error) {
	var request models.Request
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("request not found")
		}
		return nil, err
	}

	if request.Status != models.RequestStatusCompleted {
		return nil, response.NewConflict("request must be completed before reviewing")
	}

	var volunteer models.User
	if err := s.db.First(&volunteer, req.VolunteerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("volunteer not found")
		}
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.Review{}).
		Where("request_id = ? AND volunteer_id = ?", requestID, req.VolunteerID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, response.NewConflict("review already exists for this request and volunteer")
	}

	var assignments int64
	if err := s.db.Model(&models.Assignment{}).
		Where("request_id = ? AND volunteer_id = ?", requestID, req.VolunteerID).
		Count(&assignments).Error; err != nil {
		return nil, err
	}
	if assignments == 0 {
		return nil, response.NewConflict("no assignment found for this request and volunteer")
	}

	review := models.Review{
		RequestID:   requestID,
		VolunteerID: req.VolunteerID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	if err := s.userService.RecomputeRating(req.VolunteerID); err != nil {
		return nil, err
	}

	review.Volunteer = volunteer
	return &review, nil
}

// ListForVolunteer returns reviews received by a volunteer, newest first.
func (s *ReviewService) ListForVolunteer(volunteerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Request").
		Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListForRequest returns reviews attached to a request, newest first.
func (s *ReviewService) ListForRequest(requestID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Volunteer").
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
