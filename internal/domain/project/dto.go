package project

import "github.com/linskybing/tracker-go/internal/domain/user"

type CreateProjectInput struct {
	Name        string  `json:"name" form:"name" binding:"required,min=1,max=100" example:"Apollo"`
	Description *string `json:"description,omitempty" form:"description" example:"Launch tracker"`
}

type UpdateProjectInput struct {
	Name        *string `json:"name,omitempty" form:"name" binding:"omitempty,min=1,max=100" example:"Apollo"`
	Description *string `json:"description,omitempty" form:"description" example:"Launch tracker"`
}

type AddMemberInput struct {
	UserID uint `json:"user_id" form:"user_id" binding:"required" example:"2"`
}

// Detail is a project together with its member list.
type Detail struct {
	Project
	Users []user.User `json:"users"`
}
