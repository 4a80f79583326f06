package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/metrics"
	"github.com/linskybing/tracker-go/internal/notify"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateTicket(t *testing.T) {
	t.Run("owner defaults to creator", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(4)).Return(uint(1), nil)
		m.member(1, u)
		m.ticket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
			tk.ID = 11
			return nil
		})

		tk, err := NewTicketService(m.repos, nil, nil).CreateTicket(testContext(), u, ticket.CreateTicketInput{Title: "Fix bug", ColumnID: 4})
		require.NoError(t, err)
		assert.Equal(t, uint(11), tk.ID)
		require.NotNil(t, tk.OwnerID)
		assert.Equal(t, uint(1), *tk.OwnerID)
		assert.Equal(t, ticket.DefaultStatus, tk.Status)
		assert.Equal(t, ticket.DefaultPriority, tk.Priority)
	})

	t.Run("explicit owner must be a member", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(4)).Return(uint(1), nil)
		m.member(1, u)
		m.user.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7}, nil)
		m.project.EXPECT().IsMember(uint(1), uint(7)).Return(false, nil)

		_, err := NewTicketService(m.repos, nil, nil).CreateTicket(testContext(), u, ticket.CreateTicketInput{Title: "Fix bug", ColumnID: 4, OwnerID: ptr(uint(7))})
		assert.ErrorIs(t, err, ErrOwnerNotMember)
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("explicit owner must exist", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(4)).Return(uint(1), nil)
		m.member(1, u)
		m.user.EXPECT().GetUserByID(uint(7)).Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := NewTicketService(m.repos, nil, nil).CreateTicket(testContext(), u, ticket.CreateTicketInput{Title: "Fix bug", ColumnID: 4, OwnerID: ptr(uint(7))})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing column", func(t *testing.T) {
		m := setupMocks(t)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(4)).Return(uint(0), gorm.ErrRecordNotFound)

		_, err := NewTicketService(m.repos, nil, nil).CreateTicket(testContext(), developer(1), ticket.CreateTicketInput{Title: "Fix bug", ColumnID: 4})
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("outsider", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(2)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(4)).Return(uint(1), nil)
		m.outsider(1, u)

		_, err := NewTicketService(m.repos, nil, nil).CreateTicket(testContext(), u, ticket.CreateTicketInput{Title: "Fix bug", ColumnID: 4})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func setupTicketUpdate(t *testing.T, u *user.User, current ticket.Ticket) *testMocks {
	m := setupMocks(t)
	m.hierarchy.EXPECT().ProjectIDByTicket(current.ID).Return(uint(1), nil)
	m.member(1, u)
	m.ticket.EXPECT().GetTicketForUpdate(current.ID).Return(current, nil)
	return m
}

func TestUpdateTicketRecordsHistory(t *testing.T) {
	u := developer(1)
	m := setupTicketUpdate(t, u, baseTicket())
	events := &eventRecorder{}

	var written []*ticket.History
	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *ticket.History) error {
		written = append(written, h)
		return nil
	})

	tk, err := NewTicketService(m.repos, events, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{Status: ptr("closed")})
	require.NoError(t, err)
	assert.Equal(t, "closed", tk.Status)

	require.Len(t, written, 1)
	assert.Equal(t, FieldStatus, written[0].FieldChanged)
	assert.Equal(t, "open", *written[0].OldValue)
	assert.Equal(t, "closed", *written[0].NewValue)
	assert.Equal(t, uint(1), *written[0].ChangedByID)
	assert.Equal(t, []string{notify.TicketUpdated}, events.types())
}

func historyRecorded(t *testing.T) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, metrics.HistoryRecords.Write(&out))
	return out.GetCounter().GetValue()
}

func TestUpdateTicketMultipleFields(t *testing.T) {
	u := developer(1)
	m := setupTicketUpdate(t, u, baseTicket())
	start := historyRecorded(t)

	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).Return(nil).Times(3)

	_, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{
		Title:       ptr("Fix it"),
		Priority:    ptr("high"),
		Description: ptr("now with details"),
		Status:      ptr("open"),
	})
	require.NoError(t, err)
	assert.Equal(t, start+3, historyRecorded(t))
}

func TestUpdateTicketWithoutChangesWritesNothing(t *testing.T) {
	u := developer(1)
	m := setupTicketUpdate(t, u, baseTicket())
	events := &eventRecorder{}

	tk, err := NewTicketService(m.repos, events, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{Status: ptr("open")})
	require.NoError(t, err)
	assert.Equal(t, "open", tk.Status)
	assert.Empty(t, events.types())
}

func TestUpdateTicketHistoryFailureFailsUpdate(t *testing.T) {
	u := developer(1)
	m := setupTicketUpdate(t, u, baseTicket())
	events := &eventRecorder{}
	start := historyRecorded(t)

	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).Return(nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).Return(errors.New("disk full"))

	_, err := NewTicketService(m.repos, events, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{
		Title:  ptr("Fix it"),
		Status: ptr("closed"),
	})
	assert.Error(t, err)
	assert.Empty(t, events.types())
	assert.Equal(t, start, historyRecorded(t))
}

func TestUpdateTicketClearOwner(t *testing.T) {
	u := developer(1)
	m := setupTicketUpdate(t, u, baseTicket())

	var written *ticket.History
	m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *ticket.History) error {
		written = h
		return nil
	})

	tk, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{ClearOwner: true})
	require.NoError(t, err)
	assert.Nil(t, tk.OwnerID)
	require.NotNil(t, written)
	assert.Equal(t, FieldOwner, written.FieldChanged)
	assert.Nil(t, written.NewValue)
}

func TestUpdateTicketMove(t *testing.T) {
	t.Run("target column missing", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.hierarchy.EXPECT().ProjectIDByTicket(uint(1)).Return(uint(1), nil)
		m.member(1, u)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(99)).Return(uint(0), gorm.ErrRecordNotFound)

		_, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{ColumnID: ptr(uint(99))})
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("target column in a foreign project", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.hierarchy.EXPECT().ProjectIDByTicket(uint(1)).Return(uint(1), nil)
		m.member(1, u)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(20)).Return(uint(2), nil)
		m.outsider(2, u)

		_, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{ColumnID: ptr(uint(20))})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("move keeps owner only if member of target project", func(t *testing.T) {
		u := developer(1)
		current := baseTicket()
		current.OwnerID = ptr(uint(7))
		m := setupTicketUpdate(t, u, current)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(9)).Return(uint(2), nil)
		m.member(2, u)
		m.project.EXPECT().IsMember(uint(2), uint(7)).Return(false, nil)

		_, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{ColumnID: ptr(uint(9))})
		assert.ErrorIs(t, err, ErrOwnerNotMember)
	})

	t.Run("move to another project with member owner", func(t *testing.T) {
		u := developer(1)
		current := baseTicket()
		current.OwnerID = ptr(uint(7))
		m := setupTicketUpdate(t, u, current)
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(9)).Return(uint(2), nil)
		m.member(2, u)
		m.project.EXPECT().IsMember(uint(2), uint(7)).Return(true, nil)
		m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)
		m.history.EXPECT().CreateHistory(gomock.Any()).Return(nil)

		tk, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{ColumnID: ptr(uint(9))})
		require.NoError(t, err)
		assert.Equal(t, uint(9), tk.ColumnID)
		assert.Equal(t, uint(7), *tk.OwnerID)
	})

	t.Run("move within project", func(t *testing.T) {
		u := developer(1)
		m := setupTicketUpdate(t, u, baseTicket())
		m.hierarchy.EXPECT().ProjectIDByColumn(uint(5)).Return(uint(1), nil)
		m.ticket.EXPECT().UpdateTicket(gomock.Any()).Return(nil)

		var written *ticket.History
		m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *ticket.History) error {
			written = h
			return nil
		})

		tk, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{ColumnID: ptr(uint(5))})
		require.NoError(t, err)
		assert.Equal(t, uint(5), tk.ColumnID)
		assert.Equal(t, FieldColumn, written.FieldChanged)
		assert.Equal(t, "4", *written.OldValue)
		assert.Equal(t, "5", *written.NewValue)
	})
}

func TestUpdateTicketOutsider(t *testing.T) {
	m := setupMocks(t)
	u := developer(2)
	m.hierarchy.EXPECT().ProjectIDByTicket(uint(1)).Return(uint(1), nil)
	m.outsider(1, u)

	_, err := NewTicketService(m.repos, nil, nil).UpdateTicket(testContext(), u, 1, ticket.UpdateTicketInput{Status: ptr("closed")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteTicket(t *testing.T) {
	t.Run("developer is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.hierarchy.EXPECT().ProjectIDByTicket(uint(3)).Return(uint(1), nil)
		m.member(1, u)

		err := NewTicketService(m.repos, nil, nil).DeleteTicket(testContext(), u, 3)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("team lead deletes", func(t *testing.T) {
		m := setupMocks(t)
		store := newFakeStore()
		u := teamLead(1)
		m.hierarchy.EXPECT().ProjectIDByTicket(uint(3)).Return(uint(1), nil)
		m.member(1, u)
		m.attachment.EXPECT().ListObjectKeysByTicket(uint(3)).Return([]string{"k1", "k2"}, nil)
		m.ticket.EXPECT().DeleteTicket(uint(3)).Return(nil)

		require.NoError(t, NewTicketService(m.repos, nil, store).DeleteTicket(testContext(), u, 3))
		assert.Equal(t, []string{"k1", "k2"}, store.removed)
	})

	t.Run("missing ticket", func(t *testing.T) {
		m := setupMocks(t)
		m.hierarchy.EXPECT().ProjectIDByTicket(uint(3)).Return(uint(0), gorm.ErrRecordNotFound)

		err := NewTicketService(m.repos, nil, nil).DeleteTicket(testContext(), admin(1), 3)
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}

func TestListTickets(t *testing.T) {
	t.Run("requires project", func(t *testing.T) {
		m := setupMocks(t)
		_, err := NewTicketService(m.repos, nil, nil).ListTickets(developer(1), ticket.Filter{})
		var ve *ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("outsider", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.outsider(1, u)

		_, err := NewTicketService(m.repos, nil, nil).ListTickets(u, ticket.Filter{ProjectID: 1})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("passes filters through", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.member(1, u)
		f := ticket.Filter{ProjectID: 1, Search: "login", Status: "open", Priority: "high", OwnerID: ptr(uint(1))}
		m.ticket.EXPECT().ListTickets(f).Return([]ticket.Ticket{{ID: 1}}, nil)

		got, err := NewTicketService(m.repos, nil, nil).ListTickets(u, f)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestTicketHistory(t *testing.T) {
	m := setupMocks(t)
	u := developer(1)
	m.hierarchy.EXPECT().ProjectIDByTicket(uint(3)).Return(uint(1), nil)
	m.member(1, u)
	rows := []ticket.History{{ID: 1}, {ID: 2}}
	m.history.EXPECT().ListHistory(uint(3)).Return(rows, nil)

	got, err := NewTicketService(m.repos, nil, nil).TicketHistory(u, 3)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestGetTicket(t *testing.T) {
	m := setupMocks(t)
	u := developer(1)
	m.hierarchy.EXPECT().ProjectIDByTicket(uint(3)).Return(uint(1), nil)
	m.member(1, u)
	m.ticket.EXPECT().GetTicketByID(uint(3)).Return(ticket.Ticket{ID: 3, Title: "x"}, nil)

	tk, err := NewTicketService(m.repos, nil, nil).GetTicket(u, 3)
	require.NoError(t, err)
	assert.Equal(t, "x", tk.Title)
}
