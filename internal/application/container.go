package application

import (
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/storage"
)

// Options carries the optional collaborators. Nil values disable the
// corresponding side effect.
type Options struct {
	Notifier notify.Publisher
	Mailer   Mailer
	Store    storage.ObjectStore
}

type Services struct {
	Members    *MembershipAuthority
	Hierarchy  *HierarchyResolver
	Audit      *AuditTrail
	User       *UserService
	Project    *ProjectService
	Board      *BoardService
	Ticket     *TicketService
	Comment    *CommentService
	Invitation *InvitationService
	Activity   *ActivityService
	Attachment *AttachmentService
}

func New(repos *repository.Repos, opts Options) *Services {
	return &Services{
		Members:    NewMembershipAuthority(repos),
		Hierarchy:  NewHierarchyResolver(repos),
		Audit:      NewAuditTrail(repos),
		User:       NewUserService(repos, opts.Mailer),
		Project:    NewProjectService(repos, opts.Notifier, opts.Store),
		Board:      NewBoardService(repos, opts.Notifier),
		Ticket:     NewTicketService(repos, opts.Notifier, opts.Store),
		Comment:    NewCommentService(repos, opts.Notifier),
		Invitation: NewInvitationService(repos, opts.Notifier, opts.Mailer),
		Activity:   NewActivityService(repos),
		Attachment: NewAttachmentService(repos, opts.Notifier, opts.Store),
	}
}
