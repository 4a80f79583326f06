package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "User registration info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username or email already taken"
// @Failure 422 {object} response.ErrorResponse "Validation failed"
// @Router /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.svc.Register(c, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} user.LoginResponse "Session token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	tok, u, err := h.svc.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		tok,
		int(config.AccessTokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction(), // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, user.LoginResponse{Token: tok, User: u})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /api/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /api/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.svc.GetProfile(u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update current user's profile
// @Description Partially update username, email or password. Changing the password requires old_password.
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateProfileInput true "Fields to change"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Missing or incorrect old password"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 409 {object} response.ErrorResponse "Username or email already taken"
// @Router /api/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	var input user.UpdateProfileInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.svc.UpdateProfile(c, u, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RequestPasswordReset godoc
// @Summary Request a password reset token
// @Description The token is mailed to the user. Outside production it is also returned in the response.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.PasswordResetRequest true "Account email"
// @Success 200 {object} user.PasswordResetIssued
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /api/request-password-reset [post]
func (h *UserHandler) RequestPasswordReset(c *gin.Context) {
	var input user.PasswordResetRequest
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	tok, err := h.svc.IssueResetToken(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	out := user.PasswordResetIssued{Message: "Password reset token issued"}
	if !config.IsProduction() {
		out.Token = tok
	}
	c.JSON(http.StatusOK, out)
}

// ResetPassword godoc
// @Summary Reset password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.PasswordResetConfirm true "Token and new password"
// @Success 200 {object} response.MessageResponse "Password reset successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /api/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var input user.PasswordResetConfirm
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	if err := h.svc.ConsumeResetToken(input.Token, input.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password reset successfully"})
}
