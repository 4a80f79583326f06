package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/internal/repository/mock"
	"github.com/linskybing/tracker-go/pkg/response"
	"github.com/linskybing/tracker-go/pkg/token"
	"github.com/linskybing/tracker-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	token.Init("test-secret", "tracker-test")
	config.AccessTokenTTL = time.Minute
}

type testEnv struct {
	user    *mock.MockUserRepo
	project *mock.MockProjectRepo
	ticket  *mock.MockTicketRepo
	hub     *notify.Hub
	svc     *application.Services
}

func setupEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	activity := mock.NewMockActivityRepo(ctrl)
	activity.EXPECT().CreateActivityLog(gomock.Any()).Return(nil).AnyTimes()

	env := &testEnv{
		user:    mock.NewMockUserRepo(ctrl),
		project: mock.NewMockProjectRepo(ctrl),
		ticket:  mock.NewMockTicketRepo(ctrl),
		hub:     notify.NewHub(8),
	}
	repos := &repository.Repos{
		User:       env.user,
		Project:    env.project,
		Hierarchy:  mock.NewMockHierarchyRepo(ctrl),
		Board:      mock.NewMockBoardRepo(ctrl),
		Ticket:     env.ticket,
		History:    mock.NewMockHistoryRepo(ctrl),
		Invitation: mock.NewMockInvitationRepo(ctrl),
		Activity:   activity,
		Attachment: mock.NewMockAttachmentRepo(ctrl),
	}
	env.svc = application.New(repos, application.Options{Notifier: env.hub})
	t.Cleanup(env.hub.Close)
	return env
}

// asUser stands in for the auth middleware.
func asUser(u *user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.SetCurrentUser(c, u)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	var out response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/api/health", Health)

	w := doJSON(r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := setupEnv(t)
		env.user.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
		env.user.EXPECT().GetUserByEmail("alice@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
		env.user.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
			u.ID = 1
			return nil
		})

		r := gin.New()
		r.POST("/api/register", NewUserHandler(env.svc.User).Register)
		w := doJSON(r, http.MethodPost, "/api/register", map[string]string{
			"username": "alice", "email": "alice@example.com", "password": "secret123",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
		var got user.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, config.RoleDeveloper, got.Role)
	})

	t.Run("duplicate username", func(t *testing.T) {
		env := setupEnv(t)
		env.user.EXPECT().GetUserByUsername("alice").Return(user.User{ID: 9}, nil)

		r := gin.New()
		r.POST("/api/register", NewUserHandler(env.svc.User).Register)
		w := doJSON(r, http.MethodPost, "/api/register", map[string]string{
			"username": "alice", "email": "alice@example.com", "password": "secret123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decodeError(t, w).Kind)
	})

	t.Run("validation", func(t *testing.T) {
		env := setupEnv(t)
		r := gin.New()
		r.POST("/api/register", NewUserHandler(env.svc.User).Register)
		w := doJSON(r, http.MethodPost, "/api/register", map[string]string{"username": "al", "email": "nope"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "validation_error", body.Kind)
		assert.Contains(t, body.Fields, "email")
		assert.Contains(t, body.Fields, "password")
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := user.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash), Role: config.RoleDeveloper}

	t.Run("sets session cookie", func(t *testing.T) {
		env := setupEnv(t)
		env.user.EXPECT().GetUserByEmail("alice@example.com").Return(stored, nil)

		r := gin.New()
		r.POST("/api/login", NewUserHandler(env.svc.User).Login)
		w := doJSON(r, http.MethodPost, "/api/login", map[string]string{"email": "alice@example.com", "password": "secret123"})

		require.Equal(t, http.StatusOK, w.Code)
		var out user.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.NotEmpty(t, out.Token)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "token="+out.Token)

		claims, err := token.Parse(out.Token, token.AudienceSession)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := setupEnv(t)
		env.user.EXPECT().GetUserByEmail("alice@example.com").Return(stored, nil)

		r := gin.New()
		r.POST("/api/login", NewUserHandler(env.svc.User).Login)
		w := doJSON(r, http.MethodPost, "/api/login", map[string]string{"email": "alice@example.com", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetProjectStatusCodes(t *testing.T) {
	u := &user.User{ID: 2, Role: config.RoleDeveloper}

	t.Run("not a member", func(t *testing.T) {
		env := setupEnv(t)
		env.project.EXPECT().GetProjectByID(uint(1)).Return(project.Project{ID: 1}, nil)
		env.project.EXPECT().IsMember(uint(1), uint(2)).Return(false, nil)

		r := gin.New()
		r.GET("/api/projects/:id", asUser(u), NewProjectHandler(env.svc.Project).GetProjectByID)
		w := doJSON(r, http.MethodGet, "/api/projects/1", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing project", func(t *testing.T) {
		env := setupEnv(t)
		env.project.EXPECT().GetProjectByID(uint(1)).Return(project.Project{}, gorm.ErrRecordNotFound)

		r := gin.New()
		r.GET("/api/projects/:id", asUser(u), NewProjectHandler(env.svc.Project).GetProjectByID)
		w := doJSON(r, http.MethodGet, "/api/projects/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		env := setupEnv(t)
		r := gin.New()
		r.GET("/api/projects/:id", asUser(u), NewProjectHandler(env.svc.Project).GetProjectByID)
		w := doJSON(r, http.MethodGet, "/api/projects/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no user", func(t *testing.T) {
		env := setupEnv(t)
		r := gin.New()
		r.GET("/api/projects/:id", NewProjectHandler(env.svc.Project).GetProjectByID)
		w := doJSON(r, http.MethodGet, "/api/projects/1", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAddMemberFromQuery(t *testing.T) {
	env := setupEnv(t)
	lead := &user.User{ID: 1, Role: config.RoleTeamLead}
	env.project.EXPECT().GetProjectByID(uint(1)).Return(project.Project{ID: 1}, nil)
	env.project.EXPECT().IsMember(uint(1), uint(1)).Return(true, nil)
	env.user.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Username: "bob"}, nil)
	env.project.EXPECT().AddMember(uint(1), uint(5)).Return(nil)

	r := gin.New()
	r.POST("/api/projects/:id/users", asUser(lead), NewProjectHandler(env.svc.Project).AddMember)
	w := doJSON(r, http.MethodPost, "/api/projects/1/users?user_id=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTicketsRequiresProject(t *testing.T) {
	env := setupEnv(t)
	r := gin.New()
	r.GET("/api/tickets", asUser(&user.User{ID: 1}), NewTicketHandler(env.svc.Ticket).ListTickets)

	w := doJSON(r, http.MethodGet, "/api/tickets?status=open", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeError(t, w).Fields, "project_id")
}

func TestFieldLabel(t *testing.T) {
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var in project.AddMemberInput
		if err := c.ShouldBind(&in); err != nil {
			bindError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := doJSON(r, http.MethodPost, "/x", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "is required", decodeError(t, w).Fields["user_id"])
}

func TestBroadcastRejectsPlainRequest(t *testing.T) {
	env := setupEnv(t)
	r := gin.New()
	r.GET("/ws", asUser(&user.User{ID: 1}), NewBroadcastHandler(env.hub).Serve)

	w := doJSON(r, http.MethodGet, "/ws", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "{")
	assert.Zero(t, env.hub.Len())
}

func TestBroadcastRelaysToAllListeners(t *testing.T) {
	env := setupEnv(t)
	r := gin.New()
	r.GET("/ws", asUser(&user.User{ID: 1}), NewBroadcastHandler(env.hub).Serve)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	a, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer a.Close()
	b, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer b.Close()

	require.Eventually(t, func() bool { return env.hub.Len() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte("hello board")))

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, "hello board", string(msg))
	}

	env.hub.Publish(notify.Event{Type: notify.TicketCreated, ProjectID: 1, EntityID: 3})
	_ = b.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := b.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), notify.TicketCreated)
}
