package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateProjectAddsCreatorAsMember(t *testing.T) {
	m := setupMocks(t)
	events := &eventRecorder{}
	svc := NewProjectService(m.repos, events, nil)
	u := developer(1)

	gomock.InOrder(
		m.project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = 10
			return nil
		}),
		m.project.EXPECT().AddMember(uint(10), uint(1)).Return(nil),
	)

	p, err := svc.CreateProject(testContext(), u, project.CreateProjectInput{Name: " Alpha "})
	require.NoError(t, err)
	assert.Equal(t, uint(10), p.ID)
	assert.Equal(t, "Alpha", p.Name)
	assert.Equal(t, []string{notify.ProjectCreated}, events.types())
}

func TestCreateProjectFailsWhenMembershipFails(t *testing.T) {
	m := setupMocks(t)
	events := &eventRecorder{}
	svc := NewProjectService(m.repos, events, nil)

	m.project.EXPECT().CreateProject(gomock.Any()).Return(nil)
	m.project.EXPECT().AddMember(gomock.Any(), uint(1)).Return(errors.New("insert failed"))

	_, err := svc.CreateProject(testContext(), developer(1), project.CreateProjectInput{Name: "Alpha"})
	assert.Error(t, err)
	assert.Empty(t, events.types(), "nothing published for a failed transaction")
}

func TestCreateProjectRequiresName(t *testing.T) {
	m := setupMocks(t)
	_, err := NewProjectService(m.repos, nil, nil).CreateProject(testContext(), developer(1), project.CreateProjectInput{Name: "  "})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestGetProject(t *testing.T) {
	t.Run("member sees project with users", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.member(2, u)
		m.project.EXPECT().ListMembers(uint(2)).Return([]user.User{*u}, nil)

		d, err := NewProjectService(m.repos, nil, nil).GetProject(u, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(2), d.ID)
		assert.Len(t, d.Users, 1)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.outsider(2, u)

		_, err := NewProjectService(m.repos, nil, nil).GetProject(u, 2)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing project", func(t *testing.T) {
		m := setupMocks(t)
		m.project.EXPECT().GetProjectByID(uint(2)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := NewProjectService(m.repos, nil, nil).GetProject(developer(1), 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateProject(t *testing.T) {
	m := setupMocks(t)
	u := developer(1)
	m.member(2, u)
	m.project.EXPECT().UpdateProject(gomock.Any()).Return(nil)

	p, err := NewProjectService(m.repos, nil, nil).UpdateProject(testContext(), u, 2, project.UpdateProjectInput{
		Name:        ptr("Beta"),
		Description: ptr("second"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Beta", p.Name)
	assert.Equal(t, "second", *p.Description)
}

func TestDeleteProject(t *testing.T) {
	t.Run("developer member is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.member(2, u)

		err := NewProjectService(m.repos, nil, nil).DeleteProject(testContext(), u, 2)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("team lead member is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		u := teamLead(1)
		m.member(2, u)

		err := NewProjectService(m.repos, nil, nil).DeleteProject(testContext(), u, 2)
		assert.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("admin outside project is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		u := admin(1)
		m.outsider(2, u)

		err := NewProjectService(m.repos, nil, nil).DeleteProject(testContext(), u, 2)
		assert.ErrorIs(t, err, ErrNotProjectMember)
	})

	t.Run("admin member deletes and purges attachments", func(t *testing.T) {
		m := setupMocks(t)
		store := newFakeStore()
		store.objects["tickets/1/a.png"] = []byte("x")
		events := &eventRecorder{}
		u := admin(1)
		m.member(2, u)
		m.attachment.EXPECT().ListObjectKeysByProject(uint(2)).Return([]string{"tickets/1/a.png"}, nil)
		m.project.EXPECT().DeleteProject(uint(2)).Return(nil)

		err := NewProjectService(m.repos, events, store).DeleteProject(testContext(), u, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"tickets/1/a.png"}, store.removed)
		assert.Empty(t, store.objects)
		assert.Equal(t, []string{notify.ProjectDeleted}, events.types())
	})
}

func TestAddMember(t *testing.T) {
	t.Run("developer cannot add", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.member(2, u)

		err := NewProjectService(m.repos, nil, nil).AddMember(testContext(), u, 2, 7)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("team lead adds existing user", func(t *testing.T) {
		m := setupMocks(t)
		u := teamLead(1)
		m.member(2, u)
		m.user.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "gus"}, nil)
		m.project.EXPECT().AddMember(uint(2), uint(7)).Return(nil)

		require.NoError(t, NewProjectService(m.repos, nil, nil).AddMember(testContext(), u, 2, 7))
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		m := setupMocks(t)
		u := teamLead(1)
		m.member(2, u)
		m.user.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7}, nil).Times(2)
		m.project.EXPECT().AddMember(uint(2), uint(7)).Return(nil).Times(2)

		svc := NewProjectService(m.repos, nil, nil)
		require.NoError(t, svc.AddMember(testContext(), u, 2, 7))
		require.NoError(t, svc.AddMember(testContext(), u, 2, 7))
	})

	t.Run("unknown user", func(t *testing.T) {
		m := setupMocks(t)
		u := admin(1)
		m.member(2, u)
		m.user.EXPECT().GetUserByID(uint(7)).Return(user.User{}, gorm.ErrRecordNotFound)

		err := NewProjectService(m.repos, nil, nil).AddMember(testContext(), u, 2, 7)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRemoveMember(t *testing.T) {
	t.Run("non member target is a bad request", func(t *testing.T) {
		m := setupMocks(t)
		u := teamLead(1)
		m.member(2, u)
		m.project.EXPECT().RemoveMember(uint(2), uint(7)).Return(false, nil)

		err := NewProjectService(m.repos, nil, nil).RemoveMember(testContext(), u, 2, 7)
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("removes member", func(t *testing.T) {
		m := setupMocks(t)
		events := &eventRecorder{}
		u := admin(1)
		m.member(2, u)
		m.project.EXPECT().RemoveMember(uint(2), uint(7)).Return(true, nil)

		require.NoError(t, NewProjectService(m.repos, events, nil).RemoveMember(testContext(), u, 2, 7))
		assert.Equal(t, []string{notify.MemberRemoved}, events.types())
	})
}

func TestListMembersRequiresMembership(t *testing.T) {
	m := setupMocks(t)
	u := developer(1)
	m.outsider(2, u)

	_, err := NewProjectService(m.repos, nil, nil).ListMembers(u, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}
