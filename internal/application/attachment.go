package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/storage"
	"github.com/linskybing/tracker-go/pkg/utils"
	"github.com/rs/zerolog/log"
)

const MaxAttachmentSize = 25 << 20

// Upload describes a file received from the client.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type AttachmentService struct {
	Repos    *repository.Repos
	Notifier notify.Publisher
	Store    storage.ObjectStore
	access
}

func NewAttachmentService(repos *repository.Repos, notifier notify.Publisher, store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{
		Repos:    repos,
		Notifier: notifier,
		Store:    store,
		access:   newAccess(repos),
	}
}

// AddAttachment stores the file under a generated key and records it on the
// ticket. The object is removed again if the row cannot be written.
func (s *AttachmentService) AddAttachment(c *gin.Context, u *user.User, ticketID uint, up Upload) (ticket.Attachment, error) {
	if s.Store == nil {
		return ticket.Attachment{}, ErrStorageDisabled
	}
	name := path.Base(strings.TrimSpace(up.FileName))
	if name == "" || name == "." || name == "/" {
		return ticket.Attachment{}, NewValidationError("file", "file name is required")
	}
	if up.Size <= 0 {
		return ticket.Attachment{}, NewValidationError("file", "file is empty")
	}
	if up.Size > MaxAttachmentSize {
		return ticket.Attachment{}, NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", MaxAttachmentSize))
	}

	p, err := s.ticketProject(u, ticketID)
	if err != nil {
		return ticket.Attachment{}, err
	}

	ctx := requestContext(c)
	key := fmt.Sprintf("tickets/%d/%s%s", ticketID, uuid.NewString(), strings.ToLower(path.Ext(name)))
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.Store.Put(ctx, key, contentType, up.Body, up.Size); err != nil {
		return ticket.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}

	a := ticket.Attachment{
		TicketID:    ticketID,
		UploaderID:  &u.ID,
		FileName:    name,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        up.Size,
	}
	if err := s.Repos.Attachment.CreateAttachment(&a); err != nil {
		purgeObjects(ctx, s.Store, []string{key})
		return ticket.Attachment{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &p.ID,
		Action:       activity.ActionCreate,
		ResourceType: "attachment",
		ResourceID:   idString(a.ID),
		After:        a,
		Description:  "attached " + a.FileName,
	})
	publish(s.Notifier, notify.AttachmentAdded, p.ID, a.ID, u.ID)
	return a, nil
}

func (s *AttachmentService) ListAttachments(u *user.User, ticketID uint) ([]ticket.Attachment, error) {
	if _, err := s.ticketProject(u, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Attachment.ListAttachmentsByTicket(ticketID)
}

// DownloadURL returns a presigned link valid for config.MinioURLExpiry.
func (s *AttachmentService) DownloadURL(c *gin.Context, u *user.User, id uint) (string, error) {
	if s.Store == nil {
		return "", ErrStorageDisabled
	}
	a, err := s.authorizedAttachment(u, id)
	if err != nil {
		return "", err
	}
	return s.Store.PresignedGetURL(requestContext(c), a.ObjectKey, a.FileName, config.MinioURLExpiry)
}

func (s *AttachmentService) DeleteAttachment(c *gin.Context, u *user.User, id uint) error {
	a, err := s.authorizedAttachment(u, id)
	if err != nil {
		return err
	}
	pid, err := s.hierarchy.ProjectOfTicket(a.TicketID)
	if err != nil {
		return err
	}
	if err := s.Repos.Attachment.DeleteAttachment(id); err != nil {
		return err
	}
	purgeObjects(requestContext(c), s.Store, []string{a.ObjectKey})

	utils.LogActivity(c, s.Repos.Activity, u.ID, utils.Activity{
		ProjectID:    &pid,
		Action:       activity.ActionDelete,
		ResourceType: "attachment",
		ResourceID:   idString(id),
		Before:       a,
	})
	publish(s.Notifier, notify.AttachmentRemoved, pid, id, u.ID)
	return nil
}

func (s *AttachmentService) authorizedAttachment(u *user.User, id uint) (ticket.Attachment, error) {
	a, err := s.Repos.Attachment.GetAttachmentByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ticket.Attachment{}, ErrAttachmentNotFound
		}
		return ticket.Attachment{}, err
	}
	if _, err := s.ticketProject(u, a.TicketID); err != nil {
		return ticket.Attachment{}, err
	}
	return a, nil
}

// purgeObjects removes stored files whose rows are gone. Errors are logged.
func purgeObjects(ctx context.Context, store storage.ObjectStore, keys []string) {
	if store == nil || len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	for _, key := range keys {
		if err := store.Remove(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to remove attachment object")
		}
	}
}
