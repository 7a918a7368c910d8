package services

import (
	"errors"
	"math"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// RecomputeRating averages all review ratings received by the volunteer and
// stores the result rounded to 2 decimal places. With no reviews the prior
// rating is left untouched.
func (s *UserService) RecomputeRating(volunteerID uint) error {
	var count int64
	if err := s.db.Model(&models.Review{}).Where("volunteer_id = ?", volunteerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	var avg float64
	if err := s.db.Model(&models.Review{}).
		Where("volunteer_id = ?", volunteerID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return err
	}

	rounded := math.Round(avg*100) / 100
	return s.db.Model(&models.User{}).
		Where("id = ?", volunteerID).
		Update("rating", rounded).Error
}
