package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neighborly/helpdesk/internal/middleware"
	"github.com/neighborly/helpdesk/internal/services"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type RequestHandler struct {
	requestService    *services.RequestService
	assignmentService *services.AssignmentService
}

func NewRequestHandler(db *gorm.DB) *RequestHandler {
	return &RequestHandler{
		requestService:    services.NewRequestService(db),
		assignmentService: services.NewAssignmentService(db),
	}
}

// List returns open requests, optionally filtered
// GET /api/requests?category=&urgency=&search=
func (h *RequestHandler) List(c *gin.Context) {
	var req services.SearchRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	requests, err := h.requestService.Search(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"requests": requests, "total": len(requests)})
}

// GetByID returns a single request
// GET /api/requests/:id
func (h *RequestHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	request, err := h.requestService.FindByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}

// ListMine returns the authenticated member's own requests
// GET /api/requests/mine
func (h *RequestHandler) ListMine(c *gin.Context) {
	requests, err := h.requestService.ListByUser(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"requests": requests, "total": len(requests)})
}

// Create posts a new help request owned by the caller
// POST /api/requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req services.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.requestService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, request)
}

// Update edits an open request
// PUT /api/requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.requestService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}

// Delete removes an open request
// DELETE /api/requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.requestService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "request deleted successfully"})
}

// Cancel transitions an open request to CANCELLED
// PUT /api/requests/:id/cancel
func (h *RequestHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	request, err := h.requestService.Cancel(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}

// Accept claims an open request for the authenticated volunteer
// PUT /api/requests/:id/accept
func (h *RequestHandler) Accept(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentService.Accept(id, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, assignment)
}

// Complete marks a claimed request as done
// PUT /api/requests/:id/complete
func (h *RequestHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	request, err := h.assignmentService.Complete(id, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}

// ListAssignments returns a request's assignments
// GET /api/requests/:id/assignments
func (h *RequestHandler) ListAssignments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListByRequest(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"assignments": assignments, "total": len(assignments)})
}

// ListMyAssignments returns the authenticated volunteer's assignments
// GET /api/assignments/mine
func (h *RequestHandler) ListMyAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.ListByVolunteer(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"assignments": assignments, "total": len(assignments)})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
