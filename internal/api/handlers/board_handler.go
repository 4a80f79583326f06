package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/board"
	"github.com/linskybing/tracker-go/pkg/response"
)

// BoardHandler serves boards and their columns.
type BoardHandler struct {
	svc *application.BoardService
}

func NewBoardHandler(svc *application.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// CreateBoard godoc
// @Summary Create a board in a project
// @Tags boards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body board.CreateBoardInput true "Board"
// @Success 201 {object} board.Board
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var input board.CreateBoardInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.svc.CreateBoard(c, u, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListProjectBoards godoc
// @Summary List a project's boards
// @Tags boards
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} board.Board
// @Router /api/projects/{id}/boards [get]
func (h *BoardHandler) ListProjectBoards(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	boards, err := h.svc.ListBoards(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if boards == nil {
		boards = []board.Board{}
	}
	c.JSON(http.StatusOK, boards)
}

// GetBoard godoc
// @Summary Get a board
// @Tags boards
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Board ID"
// @Success 200 {object} board.Board
// @Failure 404 {object} response.ErrorResponse "Board not found"
// @Router /api/boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetBoard(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBoard godoc
// @Summary Rename a board
// @Tags boards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Board ID"
// @Param input body board.UpdateBoardInput true "Fields to change"
// @Success 200 {object} board.Board
// @Router /api/boards/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input board.UpdateBoardInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	b, err := h.svc.UpdateBoard(c, u, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBoard godoc
// @Summary Delete a board with its columns and tickets
// @Tags boards
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Board ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBoard(c, u, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Board deleted"})
}

// ListColumns godoc
// @Summary List a board's columns in creation order
// @Tags columns
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Board ID"
// @Success 200 {array} board.Column
// @Router /api/boards/{id}/columns [get]
func (h *BoardHandler) ListColumns(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cols, err := h.svc.ListColumns(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if cols == nil {
		cols = []board.Column{}
	}
	c.JSON(http.StatusOK, cols)
}

// CreateColumn godoc
// @Summary Create a column on a board
// @Tags columns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body board.CreateColumnInput true "Column"
// @Success 201 {object} board.Column
// @Failure 404 {object} response.ErrorResponse "Board not found"
// @Router /api/columns [post]
func (h *BoardHandler) CreateColumn(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var input board.CreateColumnInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	col, err := h.svc.CreateColumn(c, u, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

// UpdateColumn godoc
// @Summary Rename a column
// @Tags columns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Column ID"
// @Param input body board.UpdateColumnInput true "Fields to change"
// @Success 200 {object} board.Column
// @Router /api/columns/{id} [put]
func (h *BoardHandler) UpdateColumn(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input board.UpdateColumnInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	col, err := h.svc.UpdateColumn(c, u, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// DeleteColumn godoc
// @Summary Delete a column and its tickets
// @Tags columns
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Column ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/columns/{id} [delete]
func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteColumn(c, u, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Column deleted"})
}
