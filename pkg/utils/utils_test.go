package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseIDParam(t *testing.T) {
	c := newTestContext("/")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = ParseIDParam(c, "id")
	assert.Error(t, err)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, err = ParseIDParam(c, "id")
	assert.Error(t, err)
}

func TestParseQueryUintParam(t *testing.T) {
	c := newTestContext("/?user_id=5")
	v, err := ParseQueryUintParam(c, "user_id")
	require.NoError(t, err)
	assert.Equal(t, uint(5), v)

	_, err = ParseQueryUintParam(newTestContext("/"), "user_id")
	assert.ErrorIs(t, err, ErrEmptyParameter)
}

func TestCurrentUser(t *testing.T) {
	c := newTestContext("/")
	_, err := GetCurrentUser(c)
	assert.ErrorIs(t, err, ErrNoCurrentUser)

	SetCurrentUser(c, &user.User{ID: 9, Username: "ann"})
	u, err := GetCurrentUser(c)
	require.NoError(t, err)
	assert.Equal(t, uint(9), u.ID)
}

func TestLogActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepo(ctrl)

	c := newTestContext("/")
	c.Request.Header.Set("User-Agent", "tests")
	pid := uint(3)

	repo.EXPECT().CreateActivityLog(gomock.Any()).DoAndReturn(func(e *activity.Log) error {
		assert.Equal(t, &pid, e.ProjectID)
		assert.Equal(t, uint(1), e.UserID)
		assert.Equal(t, activity.ActionUpdate, e.Action)
		assert.Equal(t, "tests", e.UserAgent)
		assert.Nil(t, []byte(e.OldData))

		var after map[string]string
		require.NoError(t, json.Unmarshal(e.NewData, &after))
		assert.Equal(t, "Alpha", after["name"])
		return nil
	})

	LogActivity(c, repo, 1, Activity{
		ProjectID:    &pid,
		Action:       activity.ActionUpdate,
		ResourceType: "project",
		ResourceID:   "3",
		After:        map[string]string{"name": "Alpha"},
	})
}

func TestLogActivityNilRepo(t *testing.T) {
	assert.NotPanics(t, func() {
		LogActivity(nil, nil, 1, Activity{Action: activity.ActionCreate})
	})
}
