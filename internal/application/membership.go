package application

import (
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/repository"
)

// MembershipAuthority is the single place where project access is decided.
// Membership grants read and ordinary writes; elevated writes additionally
// need one of the allowed global roles.
type MembershipAuthority struct {
	Repos *repository.Repos
}

func NewMembershipAuthority(repos *repository.Repos) *MembershipAuthority {
	return &MembershipAuthority{Repos: repos}
}

func (a *MembershipAuthority) IsMember(userID, projectID uint) (bool, error) {
	return a.Repos.Project.IsMember(projectID, userID)
}

// RequireMember loads the project and checks that u belongs to it. A missing
// project is reported before membership is considered.
func (a *MembershipAuthority) RequireMember(u *user.User, projectID uint) (project.Project, error) {
	p, err := a.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if repository.IsNotFound(err) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}

	ok, err := a.IsMember(u.ID, projectID)
	if err != nil {
		return project.Project{}, err
	}
	if !ok {
		return project.Project{}, ErrNotProjectMember
	}
	return p, nil
}

// RequireRole is RequireMember followed by a global role check.
func (a *MembershipAuthority) RequireRole(u *user.User, projectID uint, allowed []string) (project.Project, error) {
	p, err := a.RequireMember(u, projectID)
	if err != nil {
		return project.Project{}, err
	}
	if !u.HasRole(allowed...) {
		return project.Project{}, ErrInsufficientRole
	}
	return p, nil
}
