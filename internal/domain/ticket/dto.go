package ticket

type CreateTicketInput struct {
	Title       string  `json:"title" form:"title" binding:"required,min=1,max=255" example:"Fix login bug"`
	Description *string `json:"description,omitempty" form:"description" example:"Users cannot log in"`
	Status      *string `json:"status,omitempty" form:"status" binding:"omitempty,max=50" example:"open"`
	Priority    *string `json:"priority,omitempty" form:"priority" binding:"omitempty,max=50" example:"high"`
	OwnerID     *uint   `json:"owner_id,omitempty" form:"owner_id" example:"1"`
	ColumnID    uint    `json:"column_id" form:"column_id" binding:"required" example:"1"`
}

// UpdateTicketInput lists every field a ticket update may change. Nil
// pointers leave the field untouched; ClearOwner unassigns the ticket.
type UpdateTicketInput struct {
	Title       *string `json:"title,omitempty" form:"title" binding:"omitempty,min=1,max=255" example:"Fix login bug"`
	Description *string `json:"description,omitempty" form:"description" example:"Root cause found"`
	Status      *string `json:"status,omitempty" form:"status" binding:"omitempty,min=1,max=50" example:"closed"`
	Priority    *string `json:"priority,omitempty" form:"priority" binding:"omitempty,min=1,max=50" example:"low"`
	OwnerID     *uint   `json:"owner_id,omitempty" form:"owner_id" example:"2"`
	ClearOwner  bool    `json:"clear_owner,omitempty" form:"clear_owner"`
	ColumnID    *uint   `json:"column_id,omitempty" form:"column_id" example:"3"`
}

// Filter narrows a ticket listing. All set fields are combined with AND.
type Filter struct {
	ProjectID uint   `form:"project_id" binding:"required"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	Priority  string `form:"priority"`
	OwnerID   *uint  `form:"owner_id"`
	BoardID   *uint  `form:"board_id"`
	ColumnID  *uint  `form:"column_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=0,max=500"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}

type CreateCommentInput struct {
	Content string `json:"content" form:"content" binding:"required,min=1" example:"Looking into it"`
}

// FieldChange is one entry of a ticket diff.
type FieldChange struct {
	Field    string
	OldValue *string
	NewValue *string
}
