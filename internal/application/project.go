package application

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/storage"
	"github.com/linskybing/tracker-go/pkg/utils"
)

type ProjectService struct {
	Repos    *repository.Repos
	Notifier notify.Publisher
	Store    storage.ObjectStore
	access
}

func NewProjectService(repos *repository.Repos, notifier notify.Publisher, store storage.ObjectStore) *ProjectService {
	return &ProjectService{
		Repos:    repos,
		Notifier: notifier,
		Store:    store,
		access:   newAccess(repos),
	}
}

// CreateProject stores the project and makes the creator its first member
// in one transaction.
func (s *ProjectService) CreateProject(c *gin.Context, u *user.User, input project.CreateProjectInput) (project.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return project.Project{}, NewValidationError("name", "is required")
	}

	p := project.Project{
		Name:        name,
		Description: input.Description,
	}
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Project.CreateProject(&p); err != nil {
			return err
		}
		return r.Project.AddMember(p.ID, u.ID)
	})
	if err != nil {
		return project.Project{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionCreate,
		ResourceType: "project",
		ResourceID:   idString(p.ID),
		After:        p,
		Description:  "created project " + p.Name,
	})
	publish(s.Notifier, notify.ProjectCreated, p.ID, p.ID, u.ID)
	return p, nil
}

func (s *ProjectService) ListProjects(u *user.User) ([]project.Project, error) {
	return s.Repos.Project.ListProjectsByUserID(u.ID)
}

func (s *ProjectService) GetProject(u *user.User, id uint) (project.Detail, error) {
	p, err := s.members.RequireMember(u, id)
	if err != nil {
		return project.Detail{}, err
	}
	users, err := s.Repos.Project.ListMembers(id)
	if err != nil {
		return project.Detail{}, err
	}
	return project.Detail{Project: p, Users: users}, nil
}

func (s *ProjectService) UpdateProject(c *gin.Context, u *user.User, id uint, input project.UpdateProjectInput) (project.Project, error) {
	p, err := s.members.RequireMember(u, id)
	if err != nil {
		return project.Project{}, err
	}
	before := p

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return project.Project{}, NewValidationError("name", "cannot be empty")
		}
		p.Name = name
	}
	if input.Description != nil {
		p.Description = input.Description
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return project.Project{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionUpdate,
		ResourceType: "project",
		ResourceID:   idString(p.ID),
		Before:       before,
		After:        p,
		Description:  "updated project " + p.Name,
	})
	publish(s.Notifier, notify.ProjectUpdated, p.ID, p.ID, u.ID)
	return p, nil
}

// DeleteProject needs both membership and an admin role. Boards, columns,
// tickets and their children are removed by the database cascade.
func (s *ProjectService) DeleteProject(c *gin.Context, u *user.User, id uint) error {
	p, err := s.members.RequireRole(u, id, config.ProjectAdminRoles)
	if err != nil {
		return err
	}

	keys, err := s.Repos.Attachment.ListObjectKeysByProject(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}
	purgeObjects(requestContext(c), s.Store, keys)

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionDelete,
		ResourceType: "project",
		ResourceID:   idString(p.ID),
		Before:       p,
		Description:  "deleted project " + p.Name,
	})
	publish(s.Notifier, notify.ProjectDeleted, p.ID, p.ID, u.ID)
	return nil
}

func (s *ProjectService) ListMembers(u *user.User, projectID uint) ([]user.User, error) {
	if _, err := s.members.RequireMember(u, projectID); err != nil {
		return nil, err
	}
	return s.Repos.Project.ListMembers(projectID)
}

// AddMember is idempotent: adding an existing member succeeds without change.
func (s *ProjectService) AddMember(c *gin.Context, u *user.User, projectID, userID uint) error {
	if _, err := s.members.RequireRole(u, projectID, config.ProjectManagerRoles); err != nil {
		return err
	}
	target, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.Repos.Project.AddMember(projectID, target.ID); err != nil {
		return err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &projectID,
		Action:       activity.ActionJoin,
		ResourceType: "project_member",
		ResourceID:   idString(target.ID),
		Description:  "added " + target.Username,
	})
	publish(s.Notifier, notify.MemberAdded, projectID, target.ID, u.ID)
	return nil
}

func (s *ProjectService) RemoveMember(c *gin.Context, u *user.User, projectID, userID uint) error {
	if _, err := s.members.RequireRole(u, projectID, config.ProjectManagerRoles); err != nil {
		return err
	}
	removed, err := s.Repos.Project.RemoveMember(projectID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotAMember
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &projectID,
		Action:       activity.ActionLeave,
		ResourceType: "project_member",
		ResourceID:   idString(userID),
		Description:  "removed user " + idString(userID),
	})
	publish(s.Notifier, notify.MemberRemoved, projectID, userID, u.ID)
	return nil
}
