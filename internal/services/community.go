package services

import (
	"errors"
	"sort"
	"time"

	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

// CommunityService composes read-only member statistics from the user,
// request, and review tables. It owns no state of its own.
type CommunityService struct {
	db *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

type MemberSummary struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	Rating         float64         `json:"rating"`
	JoinedAt       time.Time       `json:"joined_at"`
	TotalRequests  int64           `json:"total_requests"`
	TotalReviews   int64           `json:"total_reviews"`
	ActivityLevel  string          `json:"activity_level"`
	RecentActivity string          `json:"recent_activity"`
}

type RequestDigest struct {
	ID        uint                   `json:"id"`
	Title     string                 `json:"title"`
	Category  models.RequestCategory `json:"category"`
	Status    models.RequestStatus   `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}

type ReviewDigest struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	RequestTitle string    `json:"request_title"`
	CreatedAt    time.Time `json:"created_at"`
}

type MemberDetail struct {
	MemberSummary
	RecentRequests []RequestDigest `json:"recent_requests"`
	RecentReviews  []ReviewDigest  `json:"recent_reviews"`
}

// MemberSummaries returns every member with derived activity statistics,
// sorted by rating descending.
func (s *CommunityService) MemberSummaries() ([]MemberSummary, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	summaries := make([]MemberSummary, 0, len(users))
	for _, user := range users {
		summary, err := s.summarize(&user)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Rating > summaries[j].Rating
	})

	return summaries, nil
}

// MemberDetail returns one member's summary plus their 5 most recent
// requests and 5 most recent reviews.
func (s *CommunityService) MemberDetail(id uint) (*MemberDetail, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("member not found")
		}
		return nil, err
	}

	summary, err := s.summarize(&user)
	if err != nil {
		return nil, err
	}

	var requests []models.Request
	if err := s.db.Where("user_id = ?", id).
		Order("created_at DESC").
		Limit(5).
		Find(&requests).Error; err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Preload("Request").
		Where("volunteer_id = ?", id).
		Order("created_at DESC").
		Limit(5).
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	detail := &MemberDetail{
		MemberSummary:  *summary,
		RecentRequests: make([]RequestDigest, 0, len(requests)),
		RecentReviews:  make([]ReviewDigest, 0, len(reviews)),
	}
	for _, r := range requests {
		detail.RecentRequests = append(detail.RecentRequests, RequestDigest{
			ID:        r.ID,
			Title:     r.Title,
			Category:  r.Category,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, r := range reviews {
		detail.RecentReviews = append(detail.RecentReviews, ReviewDigest{
			ID:           r.ID,
			Rating:       r.Rating,
			Comment:      r.Comment,
			RequestTitle: r.Request.Title,
			CreatedAt:    r.CreatedAt,
		})
	}

	return detail, nil
}

func (s *CommunityService) summarize(user *models.User) (*MemberSummary, error) {
	var totalRequests int64
	if err := s.db.Model(&models.Request{}).Where("user_id = ?", user.ID).Count(&totalRequests).Error; err != nil {
		return nil, err
	}

	var totalReviews int64
	if err := s.db.Model(&models.Review{}).Where("volunteer_id = ?", user.ID).Count(&totalReviews).Error; err != nil {
		return nil, err
	}

	return &MemberSummary{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Rating:         user.Rating,
		JoinedAt:       user.CreatedAt,
		TotalRequests:  totalRequests,
		TotalReviews:   totalReviews,
		ActivityLevel:  activityLevel(totalRequests, totalReviews, user.Rating),
		RecentActivity: recentActivity(totalRequests, totalReviews),
	}, nil
}

func activityLevel(requestCount, reviewCount int64, rating float64) string {
	total := requestCount + reviewCount
	switch {
	case total >= 10 && rating >= 4.0:
		return "Very Active"
	case total >= 5 && rating >= 3.5:
		return "Active"
	case total >= 2:
		return "Moderate"
	default:
		return "New Member"
	}
}

func recentActivity(requestCount, reviewCount int64) string {
	switch {
	case requestCount > 0 && reviewCount > 0:
		return "Posts requests and helps others"
	case requestCount > 0:
		return "Posts help requests"
	case reviewCount > 0:
		return "Helps community members"
	default:
		return "Recently joined the community"
	}
}
