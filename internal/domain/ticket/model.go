package ticket

import (
	"errors"
	"time"

	"github.com/linskybing/tracker-go/internal/domain/board"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"gorm.io/gorm"
)

const (
	DefaultStatus   = "open"
	DefaultPriority = "medium"
)

type Ticket struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null;index" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:50;not null;default:'open';index" json:"status"`
	Priority    string    `gorm:"size:50;not null;default:'medium';index" json:"priority"`
	OwnerID     *uint     `gorm:"index" json:"owner_id"`
	ColumnID    uint      `gorm:"not null;index" json:"column_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Owner  *user.User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
	Column board.Column `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ticket) TableName() string {
	return "tickets"
}

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Ticket Ticket    `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
	Author user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

var ErrHistoryImmutable = errors.New("ticket history is append-only")

// History records a single field change on a ticket.
type History struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID     uint      `gorm:"not null;index" json:"ticket_id"`
	FieldChanged string    `gorm:"size:50;not null" json:"field_changed"`
	OldValue     *string   `gorm:"type:text" json:"old_value"`
	NewValue     *string   `gorm:"type:text" json:"new_value"`
	ChangedByID  *uint     `gorm:"index" json:"changed_by_id"`
	ChangedAt    time.Time `gorm:"autoCreateTime;index" json:"changed_at"`

	Ticket    Ticket     `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
	ChangedBy *user.User `gorm:"foreignKey:ChangedByID;constraint:OnDelete:SET NULL" json:"-"`
}

func (History) TableName() string {
	return "ticket_history"
}

func (*History) BeforeUpdate(*gorm.DB) error {
	return ErrHistoryImmutable
}

func (*History) BeforeDelete(*gorm.DB) error {
	return ErrHistoryImmutable
}

type Attachment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID    uint      `gorm:"not null;index" json:"ticket_id"`
	UploaderID  *uint     `gorm:"index" json:"uploader_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Ticket   Ticket     `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
	Uploader *user.User `gorm:"foreignKey:UploaderID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Attachment) TableName() string {
	return "ticket_attachments"
}
