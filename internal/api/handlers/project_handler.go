package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/pkg/response"
	"github.com/linskybing/tracker-go/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
// @Summary Create a new project
// @Description The caller becomes the first member.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.CreateProjectInput true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 422 {object} response.ErrorResponse "Validation failed"
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var input project.CreateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.svc.CreateProject(c, u, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProjects godoc
// @Summary List projects the current user belongs to
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.Project
// @Router /api/projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.svc.ListProjects(u)
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get project with its members
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} project.Detail
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/projects/{id} [get]
// @Router /api/projects/{id}/settings [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.GetProject(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateProject godoc
// @Summary Update project name or description
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body project.UpdateProjectInput true "Fields to change"
// @Success 200 {object} project.Project
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/projects/{id} [put]
// @Router /api/projects/{id}/settings [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input project.UpdateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.svc.UpdateProject(c, u, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete a project and everything in it
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Requires Admin role and membership"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProject(c, u, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted"})
}

// ListMembers godoc
// @Summary List project members
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} user.User
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /api/projects/{id}/users [get]
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	members, err := h.svc.ListMembers(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add a user to the project
// @Description user_id may be sent in the body or as a query parameter.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param user_id query uint false "User ID"
// @Param input body project.AddMemberInput false "User to add"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Requires Admin or TeamLead role and membership"
// @Failure 404 {object} response.ErrorResponse "Project or user not found"
// @Router /api/projects/{id}/users [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	userID, err := utils.ParseQueryUintParam(c, "user_id")
	if err != nil {
		var input project.AddMemberInput
		if err := c.ShouldBind(&input); err != nil {
			bindError(c, err)
			return
		}
		userID = input.UserID
	}

	if err := h.svc.AddMember(c, u, id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User added to project"})
}

// RemoveMember godoc
// @Summary Remove a user from the project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param user_id path uint true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "User is not a member"
// @Failure 403 {object} response.ErrorResponse "Requires Admin or TeamLead role and membership"
// @Router /api/projects/{id}/users/{user_id} [delete]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	userID, ok := idParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.svc.RemoveMember(c, u, id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User removed from project"})
}
