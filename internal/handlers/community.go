package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/neighborly/helpdesk/internal/services"
	"github.com/neighborly/helpdesk/pkg/response"
	"gorm.io/gorm"
)

type CommunityHandler struct {
	communityService *services.CommunityService
}

func NewCommunityHandler(db *gorm.DB) *CommunityHandler {
	return &CommunityHandler{
		communityService: services.NewCommunityService(db),
	}
}

// ListMembers returns every member with derived activity statistics
// GET /api/community/members
func (h *CommunityHandler) ListMembers(c *gin.Context) {
	members, err := h.communityService.MemberSummaries()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"members": members, "total_members": len(members)})
}

// GetMember returns one member's detail with recent activity
// GET /api/community/members/:id
func (h *CommunityHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.communityService.MemberDetail(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, detail)
}
