package notify

import "time"

const (
	ProjectCreated     = "project.created"
	ProjectUpdated     = "project.updated"
	ProjectDeleted     = "project.deleted"
	MemberAdded        = "project.member_added"
	MemberRemoved      = "project.member_removed"
	BoardCreated       = "board.created"
	BoardUpdated       = "board.updated"
	BoardDeleted       = "board.deleted"
	ColumnCreated      = "column.created"
	ColumnUpdated      = "column.updated"
	ColumnDeleted      = "column.deleted"
	TicketCreated      = "ticket.created"
	TicketUpdated      = "ticket.updated"
	TicketDeleted      = "ticket.deleted"
	CommentCreated     = "comment.created"
	AttachmentAdded    = "attachment.added"
	AttachmentRemoved  = "attachment.removed"
	InvitationCreated  = "invitation.created"
	InvitationAccepted = "invitation.accepted"
)

// Event is the payload fanned out to listeners after a mutation commits.
type Event struct {
	Type      string    `json:"type"`
	ProjectID uint      `json:"project_id"`
	EntityID  uint      `json:"entity_id"`
	ActorID   uint      `json:"actor_id,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher delivers events on a best-effort basis. Implementations must not
// block the caller.
type Publisher interface {
	Publish(evt Event)
}

// Multi fans one event out to several publishers.
type Multi []Publisher

func (m Multi) Publish(evt Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(evt)
		}
	}
}
