package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	Hierarchy  HierarchyRepo
	Board      BoardRepo
	Ticket     TicketRepo
	History    HistoryRepo
	Invitation InvitationRepo
	Activity   ActivityRepo
	Attachment AttachmentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Hierarchy:  NewHierarchyRepo(db),
		Board:      NewBoardRepo(db),
		Ticket:     NewTicketRepo(db),
		History:    NewHistoryRepo(db),
		Invitation: NewInvitationRepo(db),
		Activity:   NewActivityRepo(db),
		Attachment: NewAttachmentRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		Hierarchy:  r.Hierarchy.WithTx(tx),
		Board:      r.Board.WithTx(tx),
		Ticket:     r.Ticket.WithTx(tx),
		History:    r.History.WithTx(tx),
		Invitation: r.Invitation.WithTx(tx),
		Activity:   r.Activity.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn against transaction-scoped repositories. Without a
// database handle (repositories built by hand in tests) fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
