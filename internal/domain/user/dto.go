package user

type RegisterInput struct {
	Username string  `json:"username" form:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Email    string  `json:"email" form:"email" binding:"required,email" example:"john@example.com"`
	Password string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Role     *string `json:"role,omitempty" form:"role" example:"Developer"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// UpdateProfileInput changes the caller's own account. Role is not editable here.
type UpdateProfileInput struct {
	Username    *string `json:"username,omitempty" form:"username" binding:"omitempty,min=3,max=50" example:"johndoe"`
	Email       *string `json:"email,omitempty" form:"email" binding:"omitempty,email" example:"john@example.com"`
	OldPassword *string `json:"old_password,omitempty" form:"old_password" example:"oldPass123"`
	Password    *string `json:"password,omitempty" form:"password" binding:"omitempty,min=6" example:"newPass123"`
}

type PasswordResetRequest struct {
	Email string `json:"email" form:"email" binding:"required,email" example:"john@example.com"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token" form:"token" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6" example:"newPass123"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PasswordResetIssued is returned by the reset request endpoint. Token is
// only populated outside production, where no mail transport is configured.
type PasswordResetIssued struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
