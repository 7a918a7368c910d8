package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/neighborly/helpdesk/internal/services"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{
		reviewService: services.NewReviewService(db),
	}
}

// Submit records feedback for a completed request
// POST /api/reviews/requests/:id
func (h *ReviewHandler) Submit(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Submit(requestID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, review)
}

// ListForVolunteer returns reviews received by a volunteer
// GET /api/reviews/volunteers/:id
func (h *ReviewHandler) ListForVolunteer(c *gin.Context) {
	volunteerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListForVolunteer(volunteerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"reviews": reviews, "total": len(reviews)})
}

// ListForRequest returns reviews attached to a request
// GET /api/reviews/requests/:id
func (h *ReviewHandler) ListForRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListForRequest(requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"reviews": reviews, "total": len(reviews)})
}
