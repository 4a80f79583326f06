package repository

import (
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	DeleteProject(id uint) error
	ListProjectsByUserID(userID uint) ([]project.Project, error)
	AddMember(projectID, userID uint) error
	RemoveMember(projectID, userID uint) (bool, error)
	IsMember(projectID, userID uint) (bool, error)
	ListMembers(projectID uint) ([]user.User, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

// DeleteProject removes the project row; boards, columns, tickets, members
// and invitations go with it through ON DELETE CASCADE.
func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *DBProjectRepo) ListProjectsByUserID(userID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Table("projects p").
		Select("p.*").
		Joins("JOIN project_members pm ON pm.project_id = p.id").
		Where("pm.user_id = ?", userID).
		Order("p.id ASC").
		Scan(&projects).Error
	return projects, err
}

// AddMember inserts the pairing; an existing pairing is left untouched.
func (r *DBProjectRepo) AddMember(projectID, userID uint) error {
	m := project.Member{ProjectID: projectID, UserID: userID}
	return r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error
}

// RemoveMember reports whether a pairing was actually deleted.
func (r *DBProjectRepo) RemoveMember(projectID, userID uint) (bool, error) {
	res := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&project.Member{})
	return res.RowsAffected > 0, res.Error
}

func (r *DBProjectRepo) IsMember(projectID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&project.Member{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBProjectRepo) ListMembers(projectID uint) ([]user.User, error) {
	var users []user.User
	err := r.db.Table("users u").
		Select("u.*").
		Joins("JOIN project_members pm ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("u.id ASC").
		Scan(&users).Error
	return users, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
