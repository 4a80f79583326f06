package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CreateComment godoc
// @Summary Comment on a ticket
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Ticket ID"
// @Param input body ticket.CreateCommentInput true "Comment"
// @Success 201 {object} ticket.Comment
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input ticket.CreateCommentInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	cm, err := h.svc.CreateComment(c, u, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// ListComments godoc
// @Summary List a ticket's comments oldest first
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ticket ID"
// @Success 200 {array} ticket.Comment
// @Router /api/tickets/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.svc.ListComments(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if comments == nil {
		comments = []ticket.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// GetComment godoc
// @Summary Get a comment
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Comment ID"
// @Success 200 {object} ticket.Comment
// @Failure 404 {object} response.ErrorResponse "Comment not found"
// @Router /api/comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cm, err := h.svc.GetComment(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}
