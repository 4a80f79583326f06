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

func (s *BoardService) CreateColumn(c *gin.Context, u *user.User, input board.CreateColumnInput) (board.Column, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return board.Column{}, NewValidationError("name", "is required")
	}
	p, err := s.boardProject(u, input.BoardID)
	if err != nil {
		return board.Column{}, err
	}

	col := board.Column{Name: name, BoardID: input.BoardID}
	if err := s.Repos.Board.CreateColumn(&col); err != nil {
		return board.Column{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionCreate,
		ResourceType: "column",
		ResourceID:   idString(col.ID),
		After:        col,
	})
	publish(s.Notifier, notify.ColumnCreated, p.ID, col.ID, u.ID)
	return col, nil
}

// ListColumns returns the board's columns in creation order.
func (s *BoardService) ListColumns(u *user.User, boardID uint) ([]board.Column, error) {
	if _, err := s.boardProject(u, boardID); err != nil {
		return nil, err
	}
	return s.Repos.Board.ListColumnsByBoard(boardID)
}

func (s *BoardService) UpdateColumn(c *gin.Context, u *user.User, id uint, input board.UpdateColumnInput) (board.Column, error) {
	p, err := s.columnProject(u, id)
	if err != nil {
		return board.Column{}, err
	}
	col, err := s.Repos.Board.GetColumnByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return board.Column{}, ErrColumnNotFound
		}
		return board.Column{}, err
	}
	before := col

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return board.Column{}, NewValidationError("name", "cannot be empty")
		}
		col.Name = name
	}
	if err := s.Repos.Board.UpdateColumn(&col); err != nil {
		return board.Column{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionUpdate,
		ResourceType: "column",
		ResourceID:   idString(col.ID),
		Before:       before,
		After:        col,
	})
	publish(s.Notifier, notify.ColumnUpdated, p.ID, col.ID, u.ID)
	return col, nil
}

// DeleteColumn removes the column and, through the cascade, its tickets.
// TODO: purge attachment objects of the cascaded tickets like DeleteTicket does
// (DeleteBoard has the same gap).
func (s *BoardService) DeleteColumn(c *gin.Context, u *user.User, id uint) error {
	p, err := s.columnProject(u, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Board.DeleteColumn(id); err != nil {
		return err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionDelete,
		ResourceType: "column",
		ResourceID:   idString(id),
	})
	publish(s.Notifier, notify.ColumnDeleted, p.ID, id, u.ID)
	return nil
}
