package application

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/internal/repository/mock"
	"github.com/linskybing/tracker-go/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	bcryptCost = bcrypt.MinCost
	token.Init("test-secret", "tracker-test")
	config.AccessTokenTTL = time.Minute
	config.ResetTokenTTL = time.Minute
	config.InvitationTTL = 7 * 24 * time.Hour
	config.MinioURLExpiry = time.Minute
	gin.SetMode(gin.TestMode)
}

type testMocks struct {
	user       *mock.MockUserRepo
	project    *mock.MockProjectRepo
	hierarchy  *mock.MockHierarchyRepo
	board      *mock.MockBoardRepo
	ticket     *mock.MockTicketRepo
	history    *mock.MockHistoryRepo
	invitation *mock.MockInvitationRepo
	activity   *mock.MockActivityRepo
	attachment *mock.MockAttachmentRepo
	repos      *repository.Repos
}

func setupMocks(t *testing.T) *testMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &testMocks{
		user:       mock.NewMockUserRepo(ctrl),
		project:    mock.NewMockProjectRepo(ctrl),
		hierarchy:  mock.NewMockHierarchyRepo(ctrl),
		board:      mock.NewMockBoardRepo(ctrl),
		ticket:     mock.NewMockTicketRepo(ctrl),
		history:    mock.NewMockHistoryRepo(ctrl),
		invitation: mock.NewMockInvitationRepo(ctrl),
		activity:   mock.NewMockActivityRepo(ctrl),
		attachment: mock.NewMockAttachmentRepo(ctrl),
	}
	m.repos = &repository.Repos{
		User:       m.user,
		Project:    m.project,
		Hierarchy:  m.hierarchy,
		Board:      m.board,
		Ticket:     m.ticket,
		History:    m.history,
		Invitation: m.invitation,
		Activity:   m.activity,
		Attachment: m.attachment,
	}

	// activity logging is best effort and covered in pkg/utils
	m.activity.EXPECT().CreateActivityLog(gomock.Any()).Return(nil).AnyTimes()
	return m
}

// member makes u a member of project pid.
func (m *testMocks) member(pid uint, u *user.User) {
	m.project.EXPECT().GetProjectByID(pid).Return(project.Project{ID: pid, Name: "Alpha"}, nil).AnyTimes()
	m.project.EXPECT().IsMember(pid, u.ID).Return(true, nil).AnyTimes()
}

// outsider makes project pid exist without u as a member.
func (m *testMocks) outsider(pid uint, u *user.User) {
	m.project.EXPECT().GetProjectByID(pid).Return(project.Project{ID: pid, Name: "Alpha"}, nil).AnyTimes()
	m.project.EXPECT().IsMember(pid, u.ID).Return(false, nil).AnyTimes()
}

func testContext() *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c
}

func developer(id uint) *user.User {
	return &user.User{ID: id, Username: "dev", Role: config.RoleDeveloper}
}

func teamLead(id uint) *user.User {
	return &user.User{ID: id, Username: "lead", Role: config.RoleTeamLead}
}

func admin(id uint) *user.User {
	return &user.User{ID: id, Username: "root", Role: config.RoleAdmin}
}

func ptr[T any](v T) *T {
	return &v
}

type eventRecorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *eventRecorder) Publish(evt notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeMailer struct {
	invitations []string
	resets      []string
	err         error
}

func (f *fakeMailer) SendInvitation(email, projectName, token string, expiresAt time.Time) error {
	f.invitations = append(f.invitations, email+"|"+token)
	return f.err
}

func (f *fakeMailer) SendPasswordReset(email, token string) error {
	f.resets = append(f.resets, token)
	return f.err
}

type fakeStore struct {
	objects map[string][]byte
	removed []string
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) PresignedGetURL(ctx context.Context, key, fileName string, expiry time.Duration) (string, error) {
	return "https://files.test/" + key, nil
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	delete(f.objects, key)
	f.removed = append(f.removed, key)
	return nil
}

func projectNotFound() (project.Project, error) {
	return project.Project{}, gorm.ErrRecordNotFound
}
