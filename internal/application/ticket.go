package application

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/metrics"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/storage"
	"github.com/linskybing/tracker-go/pkg/utils"
)

type TicketService struct {
	Repos    *repository.Repos
	Notifier notify.Publisher
	Store    storage.ObjectStore
	Audit    *AuditTrail
	access
}

func NewTicketService(repos *repository.Repos, notifier notify.Publisher, store storage.ObjectStore) *TicketService {
	return &TicketService{
		Repos:    repos,
		Notifier: notifier,
		Store:    store,
		Audit:    NewAuditTrail(repos),
		access:   newAccess(repos),
	}
}

// CreateTicket places a ticket in a column. The owner defaults to the
// caller; an explicit owner must exist and belong to the project.
func (s *TicketService) CreateTicket(c *gin.Context, u *user.User, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return ticket.Ticket{}, NewValidationError("title", "is required")
	}
	p, err := s.columnProject(u, input.ColumnID)
	if err != nil {
		return ticket.Ticket{}, err
	}

	ownerID := u.ID
	if input.OwnerID != nil {
		if err := s.requireAssignable(p.ID, *input.OwnerID); err != nil {
			return ticket.Ticket{}, err
		}
		ownerID = *input.OwnerID
	}

	t := ticket.Ticket{
		Title:       title,
		Description: input.Description,
		Status:      valueOr(input.Status, ticket.DefaultStatus),
		Priority:    valueOr(input.Priority, ticket.DefaultPriority),
		OwnerID:     &ownerID,
		ColumnID:    input.ColumnID,
	}
	if err := s.Repos.Ticket.CreateTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionCreate,
		ResourceType: "ticket",
		ResourceID:   idString(t.ID),
		After:        t,
		Description:  "created ticket " + t.Title,
	})
	publish(s.Notifier, notify.TicketCreated, p.ID, t.ID, u.ID)
	return t, nil
}

// ListTickets returns the project's tickets matching every filter set in f.
func (s *TicketService) ListTickets(u *user.User, f ticket.Filter) ([]ticket.Ticket, error) {
	if f.ProjectID == 0 {
		return nil, NewValidationError("project_id", "is required")
	}
	if _, err := s.members.RequireMember(u, f.ProjectID); err != nil {
		return nil, err
	}
	return s.Repos.Ticket.ListTickets(f)
}

func (s *TicketService) GetTicket(u *user.User, id uint) (ticket.Ticket, error) {
	if _, err := s.ticketProject(u, id); err != nil {
		return ticket.Ticket{}, err
	}
	return loadTicket(s.Repos, id, false)
}

// UpdateTicket applies input to the locked ticket row and records one
// history entry per changed field in the same transaction.
func (s *TicketService) UpdateTicket(c *gin.Context, u *user.User, id uint, input ticket.UpdateTicketInput) (ticket.Ticket, error) {
	p, err := s.ticketProject(u, id)
	if err != nil {
		return ticket.Ticket{}, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return ticket.Ticket{}, NewValidationError("title", "cannot be empty")
	}
	if input.Status != nil && strings.TrimSpace(*input.Status) == "" {
		return ticket.Ticket{}, NewValidationError("status", "cannot be empty")
	}
	if input.Priority != nil && strings.TrimSpace(*input.Priority) == "" {
		return ticket.Ticket{}, NewValidationError("priority", "cannot be empty")
	}

	targetProject := p.ID
	if input.ColumnID != nil {
		dest, err := s.columnProject(u, *input.ColumnID)
		if err != nil {
			return ticket.Ticket{}, err
		}
		targetProject = dest.ID
	}
	if input.OwnerID != nil {
		if err := s.requireAssignable(targetProject, *input.OwnerID); err != nil {
			return ticket.Ticket{}, err
		}
	}

	var (
		before, after ticket.Ticket
		changes       []ticket.FieldChange
	)
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		current, err := loadTicket(r, id, true)
		if err != nil {
			return err
		}
		before = current
		if targetProject != p.ID && input.OwnerID == nil && !input.ClearOwner && current.OwnerID != nil {
			ok, err := r.Project.IsMember(targetProject, *current.OwnerID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrOwnerNotMember
			}
		}
		after = applyTicketUpdate(current, input)

		changes = DiffTicket(before, after)
		if len(changes) == 0 {
			return nil
		}
		if err := r.Ticket.UpdateTicket(&after); err != nil {
			return err
		}
		return s.Audit.RecordChanges(r, id, changes, &u.ID)
	})
	if err != nil {
		return ticket.Ticket{}, err
	}
	if len(changes) == 0 {
		return before, nil
	}
	metrics.HistoryRecords.Add(float64(len(changes)))

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &targetProject,
		Action:       activity.ActionUpdate,
		ResourceType: "ticket",
		ResourceID:   idString(id),
		Before:       before,
		After:        after,
	})
	publish(s.Notifier, notify.TicketUpdated, targetProject, id, u.ID)
	return after, nil
}

// DeleteTicket requires membership and a manager role.
func (s *TicketService) DeleteTicket(c *gin.Context, u *user.User, id uint) error {
	pid, err := s.hierarchy.ProjectOfTicket(id)
	if err != nil {
		return err
	}
	if _, err := s.members.RequireRole(u, pid, config.ProjectManagerRoles); err != nil {
		return err
	}

	keys, err := s.Repos.Attachment.ListObjectKeysByTicket(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Ticket.DeleteTicket(id); err != nil {
		return err
	}
	purgeObjects(requestContext(c), s.Store, keys)

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &pid,
		Action:       activity.ActionDelete,
		ResourceType: "ticket",
		ResourceID:   idString(id),
	})
	publish(s.Notifier, notify.TicketDeleted, pid, id, u.ID)
	return nil
}

// TicketHistory returns the ticket's changes oldest first.
func (s *TicketService) TicketHistory(u *user.User, id uint) ([]ticket.History, error) {
	if _, err := s.ticketProject(u, id); err != nil {
		return nil, err
	}
	return s.Audit.History(id)
}

// requireAssignable checks that userID exists and is a member of projectID.
func (s *TicketService) requireAssignable(projectID, userID uint) error {
	if _, err := s.Repos.User.GetUserByID(userID); err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	ok, err := s.members.IsMember(userID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOwnerNotMember
	}
	return nil
}

func applyTicketUpdate(t ticket.Ticket, input ticket.UpdateTicketInput) ticket.Ticket {
	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		d := *input.Description
		t.Description = &d
	}
	if input.Status != nil {
		t.Status = strings.TrimSpace(*input.Status)
	}
	if input.Priority != nil {
		t.Priority = strings.TrimSpace(*input.Priority)
	}
	if input.ClearOwner {
		t.OwnerID = nil
	}
	if input.OwnerID != nil {
		owner := *input.OwnerID
		t.OwnerID = &owner
	}
	if input.ColumnID != nil {
		t.ColumnID = *input.ColumnID
	}
	return t
}

func loadTicket(r *repository.Repos, id uint, lock bool) (ticket.Ticket, error) {
	var (
		t   ticket.Ticket
		err error
	)
	if lock {
		t, err = r.Ticket.GetTicketForUpdate(id)
	} else {
		t, err = r.Ticket.GetTicketByID(id)
	}
	if err != nil {
		if repository.IsNotFound(err) {
			return ticket.Ticket{}, ErrTicketNotFound
		}
		return ticket.Ticket{}, err
	}
	return t, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return strings.TrimSpace(*v)
}
