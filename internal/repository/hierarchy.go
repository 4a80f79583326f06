package repository

import (
	"gorm.io/gorm"
)

// HierarchyRepo walks the ownership chain from a nested entity up to the
// project that owns it. Each lookup is a single joined query.
type HierarchyRepo interface {
	ProjectIDByBoard(boardID uint) (uint, error)
	ProjectIDByColumn(columnID uint) (uint, error)
	ProjectIDByTicket(ticketID uint) (uint, error)
	ProjectIDByComment(commentID uint) (uint, error)
	WithTx(tx *gorm.DB) HierarchyRepo
}

type DBHierarchyRepo struct {
	db *gorm.DB
}

func NewHierarchyRepo(db *gorm.DB) *DBHierarchyRepo {
	return &DBHierarchyRepo{
		db: db,
	}
}

func (r *DBHierarchyRepo) ProjectIDByBoard(boardID uint) (uint, error) {
	q := r.db.Table("boards b").
		Select("b.project_id").
		Where("b.id = ?", boardID)
	return scanProjectID(q)
}

func (r *DBHierarchyRepo) ProjectIDByColumn(columnID uint) (uint, error) {
	q := r.db.Table("board_columns c").
		Select("b.project_id").
		Joins("JOIN boards b ON b.id = c.board_id").
		Where("c.id = ?", columnID)
	return scanProjectID(q)
}

func (r *DBHierarchyRepo) ProjectIDByTicket(ticketID uint) (uint, error) {
	q := r.db.Table("tickets t").
		Select("b.project_id").
		Joins("JOIN board_columns c ON c.id = t.column_id").
		Joins("JOIN boards b ON b.id = c.board_id").
		Where("t.id = ?", ticketID)
	return scanProjectID(q)
}

func (r *DBHierarchyRepo) ProjectIDByComment(commentID uint) (uint, error) {
	q := r.db.Table("comments cm").
		Select("b.project_id").
		Joins("JOIN tickets t ON t.id = cm.ticket_id").
		Joins("JOIN board_columns c ON c.id = t.column_id").
		Joins("JOIN boards b ON b.id = c.board_id").
		Where("cm.id = ?", commentID)
	return scanProjectID(q)
}

func scanProjectID(q *gorm.DB) (uint, error) {
	var pid uint
	res := q.Limit(1).Scan(&pid)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return pid, nil
}

func (r *DBHierarchyRepo) WithTx(tx *gorm.DB) HierarchyRepo {
	if tx == nil {
		return r
	}
	return &DBHierarchyRepo{
		db: tx,
	}
}
