package application

import (
	"testing"

	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectActivity(t *testing.T) {
	t.Run("scopes query to project", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.member(1, u)
		pid := uint(1)
		m.activity.EXPECT().GetActivityLogs(activity.Query{ProjectID: &pid, Limit: 20}).Return([]activity.Log{{ID: 1}}, nil)

		logs, err := NewActivityService(m.repos).ProjectActivity(u, 1, activity.Query{Limit: 20})
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("outsider", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(2)
		m.outsider(1, u)

		_, err := NewActivityService(m.repos).ProjectActivity(u, 1, activity.Query{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestQueryActivity(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		m := setupMocks(t)
		m.activity.EXPECT().GetActivityLogs(activity.Query{Action: ptr(activity.ActionDelete)}).Return(nil, nil)

		_, err := NewActivityService(m.repos).QueryActivity(admin(1), activity.Query{Action: ptr(activity.ActionDelete)})
		assert.NoError(t, err)
	})

	t.Run("team lead is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		_, err := NewActivityService(m.repos).QueryActivity(teamLead(1), activity.Query{})
		assert.ErrorIs(t, err, ErrInsufficientRole)
	})
}

func TestCleanupOldLogs(t *testing.T) {
	m := setupMocks(t)
	m.activity.EXPECT().DeleteOldActivityLogs(90).Return(int64(12), nil)

	n, err := NewActivityService(m.repos).CleanupOldLogs(90)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}
