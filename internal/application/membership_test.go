package application

import (
	"errors"
	"testing"

	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRequireMember(t *testing.T) {
	t.Run("missing project is not found", func(t *testing.T) {
		m := setupMocks(t)
		m.project.EXPECT().GetProjectByID(uint(9)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := NewMembershipAuthority(m.repos).RequireMember(developer(1), 9)
		assert.ErrorIs(t, err, ErrProjectNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non member is forbidden", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.outsider(2, u)

		_, err := NewMembershipAuthority(m.repos).RequireMember(u, 2)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("member gets the project", func(t *testing.T) {
		m := setupMocks(t)
		u := developer(1)
		m.member(2, u)

		p, err := NewMembershipAuthority(m.repos).RequireMember(u, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(2), p.ID)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		m := setupMocks(t)
		boom := errors.New("db down")
		m.project.EXPECT().GetProjectByID(uint(2)).Return(project.Project{ID: 2}, nil)
		m.project.EXPECT().IsMember(uint(2), uint(1)).Return(false, boom)

		_, err := NewMembershipAuthority(m.repos).RequireMember(developer(1), 2)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		member  bool
		allowed []string
		wantErr error
	}{
		{"admin member may delete project", config.RoleAdmin, true, config.ProjectAdminRoles, nil},
		{"team lead may not delete project", config.RoleTeamLead, true, config.ProjectAdminRoles, ErrForbidden},
		{"developer may not delete project", config.RoleDeveloper, true, config.ProjectAdminRoles, ErrForbidden},
		{"team lead may manage members", config.RoleTeamLead, true, config.ProjectManagerRoles, nil},
		{"developer may not manage members", config.RoleDeveloper, true, config.ProjectManagerRoles, ErrForbidden},
		{"admin outside project is forbidden", config.RoleAdmin, false, config.ProjectAdminRoles, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupMocks(t)
			u := developer(5)
			u.Role = tt.role
			if tt.member {
				m.member(3, u)
			} else {
				m.outsider(3, u)
			}

			_, err := NewMembershipAuthority(m.repos).RequireRole(u, 3, tt.allowed)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireRoleChecksMembershipFirst(t *testing.T) {
	m := setupMocks(t)
	u := developer(5)
	m.outsider(3, u)

	_, err := NewMembershipAuthority(m.repos).RequireRole(u, 3, config.ProjectAdminRoles)
	assert.ErrorIs(t, err, ErrNotProjectMember)
}

func TestIsMember(t *testing.T) {
	m := setupMocks(t)
	m.project.EXPECT().IsMember(uint(4), uint(8)).Return(true, nil)

	ok, err := NewMembershipAuthority(m.repos).IsMember(8, 4)
	require.NoError(t, err)
	assert.True(t, ok)
}
