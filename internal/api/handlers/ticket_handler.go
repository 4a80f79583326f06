package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/pkg/response"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// CreateTicket godoc
// @Summary Create a ticket in a column
// @Description The owner defaults to the caller.
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Owner is not a project member"
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Column or owner not found"
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var input ticket.CreateTicketInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.CreateTicket(c, u, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListTickets godoc
// @Summary Search a project's tickets
// @Description search matches title or description case-insensitively. Other filters are exact.
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param project_id query uint true "Project ID"
// @Param search query string false "Substring of title or description"
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Param owner_id query uint false "Owner user ID"
// @Param board_id query uint false "Board ID"
// @Param column_id query uint false "Column ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 422 {object} response.ErrorResponse "project_id missing"
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var f ticket.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		bindError(c, err)
		return
	}
	tickets, err := h.svc.ListTickets(u, f)
	if err != nil {
		respondError(c, err)
		return
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicket godoc
// @Summary Get a ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetTicket(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Description Every changed field is recorded in the ticket history.
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Ticket ID"
// @Param input body ticket.UpdateTicketInput true "Fields to change"
// @Success 200 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Not a member of the ticket's or target column's project"
// @Failure 404 {object} response.ErrorResponse "Ticket or column not found"
// @Router /api/tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input ticket.UpdateTicketInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.UpdateTicket(c, u, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ticket ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Requires Admin or TeamLead role and membership"
// @Router /api/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTicket(c, u, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted"})
}

// GetHistory godoc
// @Summary Field-level change history of a ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ticket ID"
// @Success 200 {array} ticket.History
// @Router /api/tickets/{id}/history [get]
func (h *TicketHandler) GetHistory(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rows, err := h.svc.TicketHistory(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []ticket.History{}
	}
	c.JSON(http.StatusOK, rows)
}
