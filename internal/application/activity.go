package application

import (
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/repository"
)

type ActivityService struct {
	Repos *repository.Repos
	access
}

func NewActivityService(repos *repository.Repos) *ActivityService {
	return &ActivityService{
		Repos:  repos,
		access: newAccess(repos),
	}
}

// ProjectActivity lists a project's activity for one of its members.
func (s *ActivityService) ProjectActivity(u *user.User, projectID uint, q activity.Query) ([]activity.Log, error) {
	if _, err := s.members.RequireMember(u, projectID); err != nil {
		return nil, err
	}
	q.ProjectID = &projectID
	return s.Repos.Activity.GetActivityLogs(q)
}

// QueryActivity searches the whole log. Only global admins may do this.
func (s *ActivityService) QueryActivity(u *user.User, q activity.Query) ([]activity.Log, error) {
	if !u.HasRole(config.RoleAdmin) {
		return nil, ErrInsufficientRole
	}
	return s.Repos.Activity.GetActivityLogs(q)
}

func (s *ActivityService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Activity.DeleteOldActivityLogs(days)
}
