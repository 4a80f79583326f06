//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/board"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle_Integration(t *testing.T) {
	ctx := GetTestContext()
	a := ctx.RegisterAndLogin(t, config.RoleAdmin)
	b := ctx.RegisterAndLogin(t, config.RoleDeveloper)

	alpha := a.CreateProject(t, "Alpha")

	var (
		mainBoard board.Board
		todo      board.Column
		bug       ticket.Ticket
		comment   ticket.Comment
	)

	t.Run("creator is a member", func(t *testing.T) {
		resp, err := a.Client.GET(fmt.Sprintf("/api/projects/%d", alpha.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var detail project.Detail
		require.NoError(t, resp.DecodeJSON(&detail))
		require.Len(t, detail.Users, 1)
		assert.Equal(t, a.User.ID, detail.Users[0].ID)
	})

	t.Run("outsider cannot create a board", func(t *testing.T) {
		resp, err := b.Client.POST("/api/boards", map[string]interface{}{"name": "Main", "project_id": alpha.ID})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("member builds the hierarchy", func(t *testing.T) {
		resp, err := a.Client.POST("/api/boards", map[string]interface{}{"name": "Main", "project_id": alpha.ID})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		require.NoError(t, resp.DecodeJSON(&mainBoard))
		assert.Equal(t, alpha.ID, mainBoard.ProjectID)

		resp, err = a.Client.POST("/api/columns", map[string]interface{}{"name": "To Do", "board_id": mainBoard.ID})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		require.NoError(t, resp.DecodeJSON(&todo))

		resp, err = a.Client.POST("/api/tickets", map[string]interface{}{"title": "Fix bug", "column_id": todo.ID})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		require.NoError(t, resp.DecodeJSON(&bug))
		require.NotNil(t, bug.OwnerID)
		assert.Equal(t, a.User.ID, *bug.OwnerID)
		assert.Equal(t, ticket.DefaultStatus, bug.Status)
		assert.Equal(t, ticket.DefaultPriority, bug.Priority)
	})

	t.Run("status change is recorded once", func(t *testing.T) {
		resp, err := a.Client.PUT(fmt.Sprintf("/api/tickets/%d", bug.ID), map[string]string{"status": "closed"})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		resp, err = a.Client.GET(fmt.Sprintf("/api/tickets/%d/history", bug.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var history []ticket.History
		require.NoError(t, resp.DecodeJSON(&history))
		require.Len(t, history, 1)
		assert.Equal(t, "status", history[0].FieldChanged)
		require.NotNil(t, history[0].OldValue)
		require.NotNil(t, history[0].NewValue)
		assert.Equal(t, "open", *history[0].OldValue)
		assert.Equal(t, "closed", *history[0].NewValue)
		require.NotNil(t, history[0].ChangedByID)
		assert.Equal(t, a.User.ID, *history[0].ChangedByID)
	})

	t.Run("search and filter", func(t *testing.T) {
		resp, err := a.Client.GET("/api/tickets", map[string]string{
			"project_id": fmt.Sprint(alpha.ID),
			"search":     "fix",
			"status":     "closed",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var found []ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&found))
		require.Len(t, found, 1)
		assert.Equal(t, bug.ID, found[0].ID)

		resp, err = a.Client.GET("/api/tickets", map[string]string{
			"project_id": fmt.Sprint(alpha.ID),
			"search":     "%",
		})
		require.NoError(t, err)
		require.NoError(t, resp.DecodeJSON(&found))
		assert.Empty(t, found)
	})

	t.Run("non-member owner is rejected", func(t *testing.T) {
		resp, err := a.Client.PUT(fmt.Sprintf("/api/tickets/%d", bug.ID), map[string]interface{}{"owner_id": b.User.ID})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("comment", func(t *testing.T) {
		resp, err := a.Client.POST(fmt.Sprintf("/api/tickets/%d/comments", bug.ID), map[string]string{"content": "On it"})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		require.NoError(t, resp.DecodeJSON(&comment))
		assert.Equal(t, a.User.ID, comment.AuthorID)

		resp, err = b.Client.GET(fmt.Sprintf("/api/tickets/%d/comments", bug.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("only admins delete projects", func(t *testing.T) {
		resp, err := a.Client.POST(fmt.Sprintf("/api/projects/%d/users", alpha.ID), map[string]interface{}{"user_id": b.User.ID})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		resp, err = b.Client.DELETE(fmt.Sprintf("/api/projects/%d", alpha.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("delete cascades", func(t *testing.T) {
		resp, err := a.Client.DELETE(fmt.Sprintf("/api/projects/%d", alpha.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		for _, path := range []string{
			fmt.Sprintf("/api/projects/%d", alpha.ID),
			fmt.Sprintf("/api/boards/%d", mainBoard.ID),
			fmt.Sprintf("/api/boards/%d/columns", mainBoard.ID),
			fmt.Sprintf("/api/tickets/%d", bug.ID),
			fmt.Sprintf("/api/tickets/%d/history", bug.ID),
			fmt.Sprintf("/api/comments/%d", comment.ID),
		} {
			resp, err := a.Client.GET(path)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		}

		var n int64
		require.NoError(t, ctx.DB.Model(&ticket.History{}).Where("ticket_id = ?", bug.ID).Count(&n).Error)
		assert.Zero(t, n)
	})
}

func TestUnauthenticated_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.App.Router, "")

	resp, err := client.GET("/api/projects")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = client.GET("/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
