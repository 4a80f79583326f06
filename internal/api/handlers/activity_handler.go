package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/activity"
)

type ActivityHandler struct {
	svc *application.ActivityService
}

func NewActivityHandler(svc *application.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// GetActivityLogs godoc
// @Summary Query the activity log
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param project_id query uint false "Project ID"
// @Param user_id query uint false "Acting user ID"
// @Param resource_type query string false "Resource type"
// @Param action query string false "Action"
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} activity.Log
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /api/activity [get]
func (h *ActivityHandler) GetActivityLogs(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var q activity.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	logs, err := h.svc.QueryActivity(u, q)
	if err != nil {
		respondError(c, err)
		return
	}
	if logs == nil {
		logs = []activity.Log{}
	}
	c.JSON(http.StatusOK, logs)
}

// GetProjectActivity godoc
// @Summary A project's activity log
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} activity.Log
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /api/projects/{id}/activity [get]
func (h *ActivityHandler) GetProjectActivity(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var q activity.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	logs, err := h.svc.ProjectActivity(u, id, q)
	if err != nil {
		respondError(c, err)
		return
	}
	if logs == nil {
		logs = []activity.Log{}
	}
	c.JSON(http.StatusOK, logs)
}
