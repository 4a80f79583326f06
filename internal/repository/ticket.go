package repository

import (
	"strings"

	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepo interface {
	GetTicketByID(id uint) (ticket.Ticket, error)
	GetTicketForUpdate(id uint) (ticket.Ticket, error)
	CreateTicket(t *ticket.Ticket) error
	UpdateTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	ListTickets(f ticket.Filter) ([]ticket.Ticket, error)
	CreateComment(c *ticket.Comment) error
	GetCommentByID(id uint) (ticket.Comment, error)
	ListComments(ticketID uint) ([]ticket.Comment, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.First(&t, id).Error
	return t, err
}

// GetTicketForUpdate loads the ticket holding a row lock until the
// surrounding transaction ends.
func (r *DBTicketRepo) GetTicketForUpdate(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Create(t).Error
}

func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) ListTickets(f ticket.Filter) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	query := r.db.Model(&ticket.Ticket{}).
		Select("tickets.*").
		Joins("JOIN board_columns c ON c.id = tickets.column_id").
		Joins("JOIN boards b ON b.id = c.board_id").
		Where("b.project_id = ?", f.ProjectID)

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		query = query.Where(
			"(LOWER(tickets.title) LIKE ? OR LOWER(COALESCE(tickets.description, '')) LIKE ?)",
			pattern, pattern,
		)
	}
	if f.Status != "" {
		query = query.Where("tickets.status = ?", f.Status)
	}
	if f.Priority != "" {
		query = query.Where("tickets.priority = ?", f.Priority)
	}
	if f.OwnerID != nil {
		query = query.Where("tickets.owner_id = ?", *f.OwnerID)
	}
	if f.ColumnID != nil {
		query = query.Where("tickets.column_id = ?", *f.ColumnID)
	}
	if f.BoardID != nil {
		query = query.Where("c.board_id = ?", *f.BoardID)
	}

	query = query.Order("tickets.id ASC")
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) CreateComment(c *ticket.Comment) error {
	return r.db.Omit(clause.Associations).Create(c).Error
}

func (r *DBTicketRepo) GetCommentByID(id uint) (ticket.Comment, error) {
	var c ticket.Comment
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBTicketRepo) ListComments(ticketID uint) ([]ticket.Comment, error) {
	var comments []ticket.Comment
	err := r.db.Where("ticket_id = ?", ticketID).Order("id ASC").Find(&comments).Error
	return comments, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
