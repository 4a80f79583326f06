package application

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
)

type CommentService struct {
	Repos    *repository.Repos
	Notifier notify.Publisher
	access
}

func NewCommentService(repos *repository.Repos, notifier notify.Publisher) *CommentService {
	return &CommentService{
		Repos:    repos,
		Notifier: notifier,
		access:   newAccess(repos),
	}
}

// CreateComment adds a comment authored by the caller.
func (s *CommentService) CreateComment(c *gin.Context, u *user.User, ticketID uint, input ticket.CreateCommentInput) (ticket.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return ticket.Comment{}, NewValidationError("content", "is required")
	}
	p, err := s.ticketProject(u, ticketID)
	if err != nil {
		return ticket.Comment{}, err
	}

	cm := ticket.Comment{
		Content:  content,
		TicketID: ticketID,
		AuthorID: u.ID,
	}
	if err := s.Repos.Ticket.CreateComment(&cm); err != nil {
		return ticket.Comment{}, err
	}
	publish(s.Notifier, notify.CommentCreated, p.ID, cm.ID, u.ID)
	return cm, nil
}

// ListComments returns the ticket's comments oldest first.
func (s *CommentService) ListComments(u *user.User, ticketID uint) ([]ticket.Comment, error) {
	if _, err := s.ticketProject(u, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Ticket.ListComments(ticketID)
}

// GetComment resolves the comment's project before loading it.
func (s *CommentService) GetComment(u *user.User, id uint) (ticket.Comment, error) {
	if _, err := s.commentProject(u, id); err != nil {
		return ticket.Comment{}, err
	}
	cm, err := s.Repos.Ticket.GetCommentByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ticket.Comment{}, ErrCommentNotFound
		}
		return ticket.Comment{}, err
	}
	return cm, nil
}
