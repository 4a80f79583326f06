package repository

import (
	"github.com/linskybing/tracker-go/internal/domain/board"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepo interface {
	GetBoardByID(id uint) (board.Board, error)
	CreateBoard(b *board.Board) error
	UpdateBoard(b *board.Board) error
	DeleteBoard(id uint) error
	ListBoardsByProject(projectID uint) ([]board.Board, error)
	GetColumnByID(id uint) (board.Column, error)
	CreateColumn(c *board.Column) error
	UpdateColumn(c *board.Column) error
	DeleteColumn(id uint) error
	ListColumnsByBoard(boardID uint) ([]board.Column, error)
	WithTx(tx *gorm.DB) BoardRepo
}

type DBBoardRepo struct {
	db *gorm.DB
}

func NewBoardRepo(db *gorm.DB) *DBBoardRepo {
	return &DBBoardRepo{
		db: db,
	}
}

func (r *DBBoardRepo) GetBoardByID(id uint) (board.Board, error) {
	var b board.Board
	err := r.db.First(&b, id).Error
	return b, err
}

func (r *DBBoardRepo) CreateBoard(b *board.Board) error {
	return r.db.Omit(clause.Associations).Create(b).Error
}

func (r *DBBoardRepo) UpdateBoard(b *board.Board) error {
	return r.db.Omit(clause.Associations).Save(b).Error
}

func (r *DBBoardRepo) DeleteBoard(id uint) error {
	return r.db.Delete(&board.Board{}, id).Error
}

func (r *DBBoardRepo) ListBoardsByProject(projectID uint) ([]board.Board, error) {
	var boards []board.Board
	err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&boards).Error
	return boards, err
}

func (r *DBBoardRepo) GetColumnByID(id uint) (board.Column, error) {
	var c board.Column
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBBoardRepo) CreateColumn(c *board.Column) error {
	return r.db.Omit(clause.Associations).Create(c).Error
}

func (r *DBBoardRepo) UpdateColumn(c *board.Column) error {
	return r.db.Omit(clause.Associations).Save(c).Error
}

func (r *DBBoardRepo) DeleteColumn(id uint) error {
	return r.db.Delete(&board.Column{}, id).Error
}

// ListColumnsByBoard returns columns in creation order.
func (r *DBBoardRepo) ListColumnsByBoard(boardID uint) ([]board.Column, error) {
	var cols []board.Column
	err := r.db.Where("board_id = ?", boardID).Order("id ASC").Find(&cols).Error
	return cols, err
}

func (r *DBBoardRepo) WithTx(tx *gorm.DB) BoardRepo {
	if tx == nil {
		return r
	}
	return &DBBoardRepo{
		db: tx,
	}
}
