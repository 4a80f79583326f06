package application

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/token"
	"github.com/linskybing/tracker-go/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var bcryptCost = bcrypt.DefaultCost

type UserService struct {
	Repos  *repository.Repos
	Mailer Mailer
}

func NewUserService(repos *repository.Repos, mailer Mailer) *UserService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &UserService{
		Repos:  repos,
		Mailer: mailer,
	}
}

func (s *UserService) Register(c *gin.Context, input user.RegisterInput) (user.User, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)
	if username == "" {
		return user.User{}, NewValidationError("username", "is required")
	}
	if email == "" {
		return user.User{}, NewValidationError("email", "is required")
	}
	if input.Password == "" {
		return user.User{}, NewValidationError("password", "is required")
	}

	role := config.RoleDeveloper
	if input.Role != nil && *input.Role != "" {
		if !config.IsValidRole(*input.Role) {
			return user.User{}, NewValidationError("role", "must be one of "+strings.Join(config.ValidRoles, ", "))
		}
		role = *input.Role
	}

	if err := s.ensureUsernameFree(username, 0); err != nil {
		return user.User{}, err
	}
	if err := s.ensureEmailFree(email, 0); err != nil {
		return user.User{}, err
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return user.User{}, err
	}

	usr := user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		if repository.IsUniqueViolation(err) {
			return user.User{}, ErrConflict
		}
		return user.User{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, usr.ID, utils.Activity{
		Action:       activity.ActionCreate,
		ResourceType: "user",
		ResourceID:   idString(usr.ID),
		After:        usr,
		Description:  "registered " + usr.Username,
	})
	return usr, nil
}

// Authenticate checks the credentials and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (string, user.User, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return "", user.User{}, ErrInvalidCredentials
		}
		return "", user.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", user.User{}, ErrInvalidCredentials
	}

	tok, err := token.Issue(usr.ID, token.AudienceSession, config.AccessTokenTTL, "")
	if err != nil {
		return "", user.User{}, err
	}
	return tok, usr, nil
}

// ResolveCurrentUser maps a session token to the user it was issued for.
func (s *UserService) ResolveCurrentUser(tokenStr string) (*user.User, error) {
	if tokenStr == "" {
		return nil, ErrInvalidSession
	}
	claims, err := token.Parse(tokenStr, token.AudienceSession)
	if err != nil {
		return nil, ErrInvalidSession
	}

	usr, err := s.Repos.User.GetUserByID(claims.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) GetProfile(u *user.User) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(u.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) UpdateProfile(c *gin.Context, u *user.User, input user.UpdateProfileInput) (user.User, error) {
	usr, err := s.GetProfile(u)
	if err != nil {
		return user.User{}, err
	}
	before := usr

	if input.Username != nil {
		name := strings.TrimSpace(*input.Username)
		if name == "" {
			return user.User{}, NewValidationError("username", "cannot be empty")
		}
		if name != usr.Username {
			if err := s.ensureUsernameFree(name, usr.ID); err != nil {
				return user.User{}, err
			}
			usr.Username = name
		}
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return user.User{}, NewValidationError("email", "cannot be empty")
		}
		if email != usr.Email {
			if err := s.ensureEmailFree(email, usr.ID); err != nil {
				return user.User{}, err
			}
			usr.Email = email
		}
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(*input.OldPassword)); err != nil {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return user.User{}, err
		}
		usr.PasswordHash = hashed
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		if repository.IsUniqueViolation(err) {
			return user.User{}, ErrConflict
		}
		return user.User{}, err
	}

	utils.LogActivity(c, s.Repos.Activity, usr.ID, utils.Activity{
		Action:       activity.ActionUpdate,
		ResourceType: "user",
		ResourceID:   idString(usr.ID),
		Before:       before,
		After:        usr,
		Description:  "updated profile",
	})
	return usr, nil
}

func (s *UserService) ensureUsernameFree(username string, self uint) error {
	existing, err := s.Repos.User.GetUserByUsername(username)
	if err == nil && existing.ID != self {
		return ErrUsernameTaken
	}
	if err != nil && !repository.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *UserService) ensureEmailFree(email string, self uint) error {
	existing, err := s.Repos.User.GetUserByEmail(email)
	if err == nil && existing.ID != self {
		return ErrEmailTaken
	}
	if err != nil && !repository.IsNotFound(err) {
		return err
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("bcrypt")
		return "", ErrPasswordHashFailure
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
