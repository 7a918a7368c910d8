package services

import (
	"errors"
	"time"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// Accept claims an OPEN request for a volunteer. The status transition is a
// conditional update executed in the same transaction as the assignment
// insert, so two concurrent claims cannot both succeed: whichever
// transaction loses the OPEN→ACCEPTED swap fails with a conflict.
func (s *AssignmentService) Accept(requestID, volunteerID uint) (*models.Assignment, error) {
	var request models.Request
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("request not found")
		}
		return nil, err
	}

	var volunteer models.User
	if err := s.db.First(&volunteer, volunteerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("volunteer not found")
		}
		return nil, err
	}

	if request.UserID == volunteerID {
		return nil, response.NewConflict("you cannot accept your own request")
	}

	if request.Status != models.RequestStatusOpen {
		return nil, response.NewConflict("request is no longer available")
	}

	var accepted int64
	if err := s.db.Model(&models.Assignment{}).
		Where("request_id = ? AND status = ?", requestID, models.AssignmentStatusAccepted).
		Count(&accepted).Error; err != nil {
		return nil, err
	}
	if accepted > 0 {
		return nil, response.NewConflict("request has already been accepted by another volunteer")
	}

	assignment := models.Assignment{
		RequestID:   requestID,
		VolunteerID: volunteerID,
		Status:      models.AssignmentStatusAccepted,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Request{}).
			Where("id = ? AND status = ?", requestID, models.RequestStatusOpen).
			Update("status", models.RequestStatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.NewConflict("request has already been accepted by another volunteer")
		}
		return tx.Create(&assignment).Error
	}); err != nil {
		return nil, err
	}

	assignment.Volunteer = volunteer
	return &assignment, nil
}

// Complete marks the volunteer's assignment and its request as COMPLETED.
func (s *AssignmentService) Complete(requestID, volunteerID uint) (*models.Request, error) {
	var request models.Request
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("request not found")
		}
		return nil, err
	}

	var assignment models.Assignment
	if err := s.db.Where("request_id = ? AND volunteer_id = ?", requestID, volunteerID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewConflict("you are not assigned to this request")
		}
		return nil, err
	}

	now := time.Now()
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&assignment).Updates(map[string]interface{}{
			"status":       models.AssignmentStatusCompleted,
			"completed_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&request).Update("status", models.RequestStatusCompleted).Error
	}); err != nil {
		return nil, err
	}

	request.Status = models.RequestStatusCompleted
	return &request, nil
}

// ListByVolunteer returns the volunteer's assignments, newest first.
func (s *AssignmentService) ListByVolunteer(volunteerID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.Preload("Request").Preload("Request.User").
		Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// ListByRequest returns a request's assignments, newest first.
func (s *AssignmentService) ListByRequest(requestID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.Preload("Volunteer").
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// FindByRequestAndVolunteer returns the assignment linking a request to a
// volunteer, if any.
func (s *AssignmentService) FindByRequestAndVolunteer(requestID, volunteerID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Where("request_id = ? AND volunteer_id = ?", requestID, volunteerID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("assignment not found")
		}
		return nil, err
	}
	return &assignment, nil
}
