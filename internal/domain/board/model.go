package board

import (
	"time"

	"github.com/linskybing/tracker-go/internal/domain/project"
)

type Board struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Board) TableName() string {
	return "boards"
}

type Column struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	BoardID   uint      `gorm:"not null;index" json:"board_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Column) TableName() string {
	return "board_columns"
}
