package application

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/board"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/utils"
)

// BoardService manages boards and their columns. Every operation only
// requires membership in the owning project.
type BoardService struct {
	Repos    *repository.Repos
	Notifier notify.Publisher
	access
}

func NewBoardService(repos *repository.Repos, notifier notify.Publisher) *BoardService {
	return &BoardService{
		Repos:    repos,
		Notifier: notifier,
		access:   newAccess(repos),
	}
}

func (s *BoardService) CreateBoard(c *gin.Context, u *user.User, input board.CreateBoardInput) (board.Board, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return board.Board{}, NewValidationError("name", "is required")
	}
	p, err := s.members.RequireMember(u, input.ProjectID)
	if err != nil {
		return board.Board{}, err
	}

	b := board.Board{Name: name, ProjectID: p.ID}
	if err := s.Repos.Board.CreateBoard(&b); err != nil {
		return board.Board{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionCreate,
		ResourceType: "board",
		ResourceID:   idString(b.ID),
		After:        b,
		Description:  "created board " + b.Name,
	})
	publish(s.Notifier, notify.BoardCreated, p.ID, b.ID, u.ID)
	return b, nil
}

func (s *BoardService) ListBoards(u *user.User, projectID uint) ([]board.Board, error) {
	if _, err := s.members.RequireMember(u, projectID); err != nil {
		return nil, err
	}
	return s.Repos.Board.ListBoardsByProject(projectID)
}

func (s *BoardService) GetBoard(u *user.User, id uint) (board.Board, error) {
	if _, err := s.boardProject(u, id); err != nil {
		return board.Board{}, err
	}
	return s.loadBoard(id)
}

func (s *BoardService) UpdateBoard(c *gin.Context, u *user.User, id uint, input board.UpdateBoardInput) (board.Board, error) {
	p, err := s.boardProject(u, id)
	if err != nil {
		return board.Board{}, err
	}
	b, err := s.loadBoard(id)
	if err != nil {
		return board.Board{}, err
	}
	before := b

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return board.Board{}, NewValidationError("name", "cannot be empty")
		}
		b.Name = name
	}
	if err := s.Repos.Board.UpdateBoard(&b); err != nil {
		return board.Board{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionUpdate,
		ResourceType: "board",
		ResourceID:   idString(b.ID),
		Before:       before,
		After:        b,
	})
	publish(s.Notifier, notify.BoardUpdated, p.ID, b.ID, u.ID)
	return b, nil
}

func (s *BoardService) DeleteBoard(c *gin.Context, u *user.User, id uint) error {
	p, err := s.boardProject(u, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Board.DeleteBoard(id); err != nil {
		return err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionDelete,
		ResourceType: "board",
		ResourceID:   idString(id),
	})
	publish(s.Notifier, notify.BoardDeleted, p.ID, id, u.ID)
	return nil
}

func (s *BoardService) loadBoard(id uint) (board.Board, error) {
	b, err := s.Repos.Board.GetBoardByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return board.Board{}, ErrBoardNotFound
		}
		return board.Board{}, err
	}
	return b, nil
}
