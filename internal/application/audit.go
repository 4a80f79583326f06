package application

import (
	"strconv"

	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/internal/repository"
)

// Ticket fields tracked in the history, in the order they are compared.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldOwner       = "owner_id"
	FieldColumn      = "column_id"
)

// AuditTrail appends and reads ticket history. It never updates or deletes.
type AuditTrail struct {
	Repos *repository.Repos
}

func NewAuditTrail(repos *repository.Repos) *AuditTrail {
	return &AuditTrail{Repos: repos}
}

// DiffTicket lists the tracked fields whose value differs between before
// and after.
func DiffTicket(before, after ticket.Ticket) []ticket.FieldChange {
	var changes []ticket.FieldChange
	add := func(field string, old, next *string) {
		if equalPtr(old, next) {
			return
		}
		changes = append(changes, ticket.FieldChange{Field: field, OldValue: old, NewValue: next})
	}

	add(FieldTitle, &before.Title, &after.Title)
	add(FieldDescription, before.Description, after.Description)
	add(FieldStatus, &before.Status, &after.Status)
	add(FieldPriority, &before.Priority, &after.Priority)
	add(FieldOwner, uintString(before.OwnerID), uintString(after.OwnerID))
	add(FieldColumn, uintString(&before.ColumnID), uintString(&after.ColumnID))
	return changes
}

// RecordChanges writes one history row per change through r, which should be
// the transaction that persists the ticket itself.
func (a *AuditTrail) RecordChanges(r *repository.Repos, ticketID uint, changes []ticket.FieldChange, changedBy *uint) error {
	for _, ch := range changes {
		entry := &ticket.History{
			TicketID:     ticketID,
			FieldChanged: ch.Field,
			OldValue:     copyString(ch.OldValue),
			NewValue:     copyString(ch.NewValue),
			ChangedByID:  changedBy,
		}
		if err := r.History.CreateHistory(entry); err != nil {
			return err
		}
	}
	return nil
}

func (a *AuditTrail) History(ticketID uint) ([]ticket.History, error) {
	return a.Repos.History.ListHistory(ticketID)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func uintString(v *uint) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatUint(uint64(*v), 10)
	return &s
}
