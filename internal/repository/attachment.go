package repository

import (
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttachmentRepo interface {
	CreateAttachment(a *ticket.Attachment) error
	GetAttachmentByID(id uint) (ticket.Attachment, error)
	ListAttachmentsByTicket(ticketID uint) ([]ticket.Attachment, error)
	DeleteAttachment(id uint) error
	ListObjectKeysByTicket(ticketID uint) ([]string, error)
	ListObjectKeysByProject(projectID uint) ([]string, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{
		db: db,
	}
}

func (r *DBAttachmentRepo) CreateAttachment(a *ticket.Attachment) error {
	return r.db.Omit(clause.Associations).Create(a).Error
}

func (r *DBAttachmentRepo) GetAttachmentByID(id uint) (ticket.Attachment, error) {
	var a ticket.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) ListAttachmentsByTicket(ticketID uint) ([]ticket.Attachment, error) {
	var out []ticket.Attachment
	err := r.db.Where("ticket_id = ?", ticketID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&ticket.Attachment{}, id).Error
}

func (r *DBAttachmentRepo) ListObjectKeysByTicket(ticketID uint) ([]string, error) {
	var keys []string
	err := r.db.Model(&ticket.Attachment{}).
		Where("ticket_id = ?", ticketID).
		Pluck("object_key", &keys).Error
	return keys, err
}

// ListObjectKeysByProject collects the storage keys that a project delete
// will orphan once the cascade removes their rows.
func (r *DBAttachmentRepo) ListObjectKeysByProject(projectID uint) ([]string, error) {
	var keys []string
	err := r.db.Table("ticket_attachments a").
		Joins("JOIN tickets t ON t.id = a.ticket_id").
		Joins("JOIN board_columns c ON c.id = t.column_id").
		Joins("JOIN boards b ON b.id = c.board_id").
		Where("b.project_id = ?", projectID).
		Pluck("a.object_key", &keys).Error
	return keys, err
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{
		db: tx,
	}
}
