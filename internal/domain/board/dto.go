package board

type CreateBoardInput struct {
	Name      string `json:"name" form:"name" binding:"required,min=1,max=100" example:"Sprint 1"`
	ProjectID uint   `json:"project_id" form:"project_id" binding:"required" example:"1"`
}

type UpdateBoardInput struct {
	Name *string `json:"name,omitempty" form:"name" binding:"omitempty,min=1,max=100" example:"Sprint 2"`
}

type CreateColumnInput struct {
	Name    string `json:"name" form:"name" binding:"required,min=1,max=100" example:"In Progress"`
	BoardID uint   `json:"board_id" form:"board_id" binding:"required" example:"1"`
}

type UpdateColumnInput struct {
	Name *string `json:"name,omitempty" form:"name" binding:"omitempty,min=1,max=100" example:"Done"`
}
