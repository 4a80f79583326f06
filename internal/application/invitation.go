package application

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/invitation"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/utils"
	"github.com/rs/zerolog/log"
)

type InvitationService struct {
	Repos    *repository.Repos
	Notifier notify.Publisher
	Mailer   Mailer
	now      func() time.Time
	access
}

func NewInvitationService(repos *repository.Repos, notifier notify.Publisher, mailer Mailer) *InvitationService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &InvitationService{
		Repos:    repos,
		Notifier: notifier,
		Mailer:   mailer,
		now:      time.Now,
		access:   newAccess(repos),
	}
}

// CreateInvitation issues a single-use token for email to join the project.
// Mail delivery failures are logged and do not fail the request.
func (s *InvitationService) CreateInvitation(c *gin.Context, u *user.User, input invitation.CreateInvitationInput) (invitation.Invitation, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return invitation.Invitation{}, NewValidationError("email", "is required")
	}
	p, err := s.members.RequireMember(u, input.ProjectID)
	if err != nil {
		return invitation.Invitation{}, err
	}

	inv := invitation.Invitation{
		Email:     email,
		ProjectID: p.ID,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().Add(config.InvitationTTL).UTC(),
	}
	if err := s.Repos.Invitation.CreateInvitation(&inv); err != nil {
		return invitation.Invitation{}, err
	}

	if err := s.Mailer.SendInvitation(inv.Email, p.Name, inv.Token, inv.ExpiresAt); err != nil {
		log.Warn().Err(err).Uint("project_id", p.ID).Msg("invitation mail failed")
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionCreate,
		ResourceType: "invitation",
		ResourceID:   idString(inv.ID),
		Description:  "invited " + inv.Email,
	})
	publish(s.Notifier, notify.InvitationCreated, p.ID, inv.ID, u.ID)
	return inv, nil
}

// AcceptInvitation joins u to the invited project and consumes the token.
// Unknown and expired tokens are both reported as not found.
func (s *InvitationService) AcceptInvitation(c *gin.Context, u *user.User, tok string) (project.Project, error) {
	var p project.Project
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		inv, err := r.Invitation.GetInvitationByToken(tok)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrInvitationNotFound
			}
			return err
		}
		if inv.Expired(s.now()) {
			return ErrInvitationNotFound
		}

		member, err := r.Project.IsMember(inv.ProjectID, u.ID)
		if err != nil {
			return err
		}
		if member {
			return ErrAlreadyMember
		}

		if err := r.Project.AddMember(inv.ProjectID, u.ID); err != nil {
			return err
		}
		deleted, err := r.Invitation.DeleteInvitation(inv.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrInvitationNotFound
		}

		p, err = r.Project.GetProjectByID(inv.ProjectID)
		if repository.IsNotFound(err) {
			return ErrProjectNotFound
		}
		return err
	})
	if err != nil {
		return project.Project{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionJoin,
		ResourceType: "invitation",
		ResourceID:   idString(u.ID),
		Description:  u.Username + " accepted invitation",
	})
	publish(s.Notifier, notify.InvitationAccepted, p.ID, u.ID, u.ID)
	return p, nil
}

// PurgeExpired deletes invitations whose expiry has passed.
func (s *InvitationService) PurgeExpired() (int64, error) {
	return s.Repos.Invitation.DeleteExpiredInvitations(s.now())
}
