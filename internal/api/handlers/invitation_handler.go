package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/invitation"
)

type InvitationHandler struct {
	svc *application.InvitationService
}

func NewInvitationHandler(svc *application.InvitationService) *InvitationHandler {
	return &InvitationHandler{svc: svc}
}

// CreateInvitation godoc
// @Summary Invite someone to a project by email
// @Tags invitations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body invitation.CreateInvitationInput true "Invitation"
// @Success 201 {object} invitation.Invitation
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var input invitation.CreateInvitationInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	inv, err := h.svc.CreateInvitation(c, u, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// AcceptInvitation godoc
// @Summary Accept an invitation and join its project
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Already a member"
// @Failure 404 {object} response.ErrorResponse "Unknown or expired token"
// @Router /api/invitations/{token} [get]
// @Router /api/invitations/{token} [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	p, err := h.svc.AcceptInvitation(c, u, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
