package activity

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionJoin   = "join"
	ActionLeave  = "leave"
)

// Log is an operator-facing record of a mutation. It carries no foreign keys
// so entries outlive the project they describe.
type Log struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID    *uint          `gorm:"index" json:"project_id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:20;not null;index" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:64" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data,omitempty" swaggertype:"object"`
	Description  string         `gorm:"type:text" json:"description"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"type:text" json:"user_agent"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Log) TableName() string {
	return "activity_logs"
}

type Query struct {
	ProjectID    *uint      `form:"project_id"`
	UserID       *uint      `form:"user_id"`
	ResourceType *string    `form:"resource_type"`
	Action       *string    `form:"action"`
	StartTime    *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      *time.Time `form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit        int        `form:"limit" binding:"omitempty,min=0,max=1000"`
	Offset       int        `form:"offset" binding:"omitempty,min=0"`
}
