package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTicket() ticket.Ticket {
	return ticket.Ticket{
		ID:       1,
		Title:    "Fix bug",
		Status:   "open",
		Priority: "medium",
		OwnerID:  ptr(uint(1)),
		ColumnID: 4,
	}
}

func TestDiffTicketNoChanges(t *testing.T) {
	before := baseTicket()
	assert.Empty(t, DiffTicket(before, before))
}

func TestDiffTicketSingleField(t *testing.T) {
	before := baseTicket()
	after := before
	after.Status = "closed"

	changes := DiffTicket(before, after)
	require.Len(t, changes, 1)
	assert.Equal(t, FieldStatus, changes[0].Field)
	assert.Equal(t, "open", *changes[0].OldValue)
	assert.Equal(t, "closed", *changes[0].NewValue)
}

func TestDiffTicketEveryField(t *testing.T) {
	before := baseTicket()
	after := before
	after.Title = "Fix the bug"
	after.Description = ptr("details")
	after.Status = "in progress"
	after.Priority = "high"
	after.OwnerID = nil
	after.ColumnID = 5

	changes := DiffTicket(before, after)
	require.Len(t, changes, 6)

	fields := make([]string, 0, len(changes))
	for _, ch := range changes {
		fields = append(fields, ch.Field)
	}
	assert.Equal(t, []string{FieldTitle, FieldDescription, FieldStatus, FieldPriority, FieldOwner, FieldColumn}, fields)

	assert.Nil(t, changes[1].OldValue, "description was unset")
	assert.Equal(t, "details", *changes[1].NewValue)
	assert.Equal(t, "1", *changes[4].OldValue)
	assert.Nil(t, changes[4].NewValue, "owner cleared")
	assert.Equal(t, "4", *changes[5].OldValue)
	assert.Equal(t, "5", *changes[5].NewValue)
}

func TestDiffTicketIgnoresUntrackedFields(t *testing.T) {
	before := baseTicket()
	after := before
	after.ID = 99
	assert.Empty(t, DiffTicket(before, after))
}

func TestDiffTicketEqualDescriptionsByValue(t *testing.T) {
	before := baseTicket()
	before.Description = ptr("same")
	after := before
	after.Description = ptr("same")
	assert.Empty(t, DiffTicket(before, after))
}

func TestRecordChangesWritesOneRowPerChange(t *testing.T) {
	m := setupMocks(t)
	trail := NewAuditTrail(m.repos)
	changes := []ticket.FieldChange{
		{Field: FieldStatus, OldValue: ptr("open"), NewValue: ptr("closed")},
		{Field: FieldPriority, OldValue: ptr("medium"), NewValue: ptr("high")},
	}

	var written []*ticket.History
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *ticket.History) error {
		written = append(written, h)
		return nil
	}).Times(2)

	require.NoError(t, trail.RecordChanges(m.repos, 7, changes, ptr(uint(3))))
	require.Len(t, written, 2)
	for i, h := range written {
		assert.Equal(t, uint(7), h.TicketID)
		assert.Equal(t, uint(3), *h.ChangedByID)
		assert.Equal(t, changes[i].Field, h.FieldChanged)
	}
}

func TestRecordChangesStopsOnFailure(t *testing.T) {
	m := setupMocks(t)
	trail := NewAuditTrail(m.repos)
	changes := []ticket.FieldChange{
		{Field: FieldStatus, OldValue: ptr("open"), NewValue: ptr("closed")},
		{Field: FieldPriority, OldValue: ptr("medium"), NewValue: ptr("high")},
	}
	m.history.EXPECT().CreateHistory(gomock.Any()).Return(assert.AnError)

	assert.ErrorIs(t, trail.RecordChanges(m.repos, 7, changes, nil), assert.AnError)
}

func TestHistoryReadsThroughRepo(t *testing.T) {
	m := setupMocks(t)
	rows := []ticket.History{{ID: 1, FieldChanged: FieldStatus}, {ID: 2, FieldChanged: FieldTitle}}
	m.history.EXPECT().ListHistory(uint(7)).Return(rows, nil)

	got, err := NewAuditTrail(m.repos).History(7)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
