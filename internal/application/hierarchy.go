package application

import (
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/repository"
)

// HierarchyResolver maps nested entities to the id of their owning project.
// Lookups have no side effects and fail with the missing entity's NotFound.
type HierarchyResolver struct {
	Repos *repository.Repos
}

func NewHierarchyResolver(repos *repository.Repos) *HierarchyResolver {
	return &HierarchyResolver{Repos: repos}
}

func (h *HierarchyResolver) ProjectOfBoard(boardID uint) (uint, error) {
	pid, err := h.Repos.Hierarchy.ProjectIDByBoard(boardID)
	return resolved(pid, err, ErrBoardNotFound)
}

func (h *HierarchyResolver) ProjectOfColumn(columnID uint) (uint, error) {
	pid, err := h.Repos.Hierarchy.ProjectIDByColumn(columnID)
	return resolved(pid, err, ErrColumnNotFound)
}

func (h *HierarchyResolver) ProjectOfTicket(ticketID uint) (uint, error) {
	pid, err := h.Repos.Hierarchy.ProjectIDByTicket(ticketID)
	return resolved(pid, err, ErrTicketNotFound)
}

func (h *HierarchyResolver) ProjectOfComment(commentID uint) (uint, error) {
	pid, err := h.Repos.Hierarchy.ProjectIDByComment(commentID)
	return resolved(pid, err, ErrCommentNotFound)
}

func resolved(pid uint, err, notFound error) (uint, error) {
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, notFound
		}
		return 0, err
	}
	return pid, nil
}

// access combines the resolver and the authority so that every nested
// operation authorizes through the same path.
type access struct {
	members   *MembershipAuthority
	hierarchy *HierarchyResolver
}

func newAccess(repos *repository.Repos) access {
	return access{
		members:   NewMembershipAuthority(repos),
		hierarchy: NewHierarchyResolver(repos),
	}
}

func (a access) boardProject(u *user.User, boardID uint) (project.Project, error) {
	pid, err := a.hierarchy.ProjectOfBoard(boardID)
	if err != nil {
		return project.Project{}, err
	}
	return a.members.RequireMember(u, pid)
}

func (a access) columnProject(u *user.User, columnID uint) (project.Project, error) {
	pid, err := a.hierarchy.ProjectOfColumn(columnID)
	if err != nil {
		return project.Project{}, err
	}
	return a.members.RequireMember(u, pid)
}

func (a access) ticketProject(u *user.User, ticketID uint) (project.Project, error) {
	pid, err := a.hierarchy.ProjectOfTicket(ticketID)
	if err != nil {
		return project.Project{}, err
	}
	return a.members.RequireMember(u, pid)
}

func (a access) commentProject(u *user.User, commentID uint) (project.Project, error) {
	pid, err := a.hierarchy.ProjectOfComment(commentID)
	if err != nil {
		return project.Project{}, err
	}
	return a.members.RequireMember(u, pid)
}
