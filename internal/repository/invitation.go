package repository

import (
	"time"

	"github.com/linskybing/tracker-go/internal/domain/invitation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepo interface {
	CreateInvitation(inv *invitation.Invitation) error
	GetInvitationByToken(token string) (invitation.Invitation, error)
	DeleteInvitation(id uint) (bool, error)
	DeleteExpiredInvitations(before time.Time) (int64, error)
	WithTx(tx *gorm.DB) InvitationRepo
}

type DBInvitationRepo struct {
	db *gorm.DB
}

func NewInvitationRepo(db *gorm.DB) *DBInvitationRepo {
	return &DBInvitationRepo{
		db: db,
	}
}

func (r *DBInvitationRepo) CreateInvitation(inv *invitation.Invitation) error {
	return r.db.Omit(clause.Associations).Create(inv).Error
}

// GetInvitationByToken locks the row so concurrent accepts of one token
// serialize inside their transactions.
func (r *DBInvitationRepo) GetInvitationByToken(token string) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("token = ?", token).First(&inv).Error
	return inv, err
}

// DeleteInvitation reports false when the row was already gone.
func (r *DBInvitationRepo) DeleteInvitation(id uint) (bool, error) {
	res := r.db.Delete(&invitation.Invitation{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *DBInvitationRepo) DeleteExpiredInvitations(before time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", before).Delete(&invitation.Invitation{})
	return res.RowsAffected, res.Error
}

func (r *DBInvitationRepo) WithTx(tx *gorm.DB) InvitationRepo {
	if tx == nil {
		return r
	}
	return &DBInvitationRepo{
		db: tx,
	}
}
