package invitation

import (
	"time"

	"github.com/linskybing/tracker-go/internal/domain/project"
)

type Invitation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Token     string    `gorm:"size:64;not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// Expired reports whether the invitation can no longer be accepted at now.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type CreateInvitationInput struct {
	Email     string `json:"email" form:"email" binding:"required,email" example:"jane@example.com"`
	ProjectID uint   `json:"project_id" form:"project_id" binding:"required" example:"1"`
}
