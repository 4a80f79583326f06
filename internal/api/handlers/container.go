package handlers

import (
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/notify"
)

type Handlers struct {
	User       *UserHandler
	Project    *ProjectHandler
	Board      *BoardHandler
	Ticket     *TicketHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	Invitation *InvitationHandler
	Activity   *ActivityHandler
	Broadcast  *BroadcastHandler
}

func New(svc *application.Services, hub *notify.Hub) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Project:    NewProjectHandler(svc.Project),
		Board:      NewBoardHandler(svc.Board),
		Ticket:     NewTicketHandler(svc.Ticket),
		Comment:    NewCommentHandler(svc.Comment),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Invitation: NewInvitationHandler(svc.Invitation),
		Activity:   NewActivityHandler(svc.Activity),
		Broadcast:  NewBroadcastHandler(hub),
	}
}
