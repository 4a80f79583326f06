package repository

import (
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryRepo is append-only: there is no update or delete path.
type HistoryRepo interface {
	CreateHistory(h *ticket.History) error
	ListHistory(ticketID uint) ([]ticket.History, error)
	WithTx(tx *gorm.DB) HistoryRepo
}

type DBHistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *DBHistoryRepo {
	return &DBHistoryRepo{
		db: db,
	}
}

func (r *DBHistoryRepo) CreateHistory(h *ticket.History) error {
	return r.db.Omit(clause.Associations).Create(h).Error
}

func (r *DBHistoryRepo) ListHistory(ticketID uint) ([]ticket.History, error) {
	var entries []ticket.History
	err := r.db.Where("ticket_id = ?", ticketID).
		Order("changed_at ASC").
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) WithTx(tx *gorm.DB) HistoryRepo {
	if tx == nil {
		return r
	}
	return &DBHistoryRepo{
		db: tx,
	}
}
