package application

import (
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/linskybing/tracker-go/pkg/token"
	"github.com/rs/zerolog/log"
)

// IssueResetToken creates a short-lived reset token bound to the user's
// current password hash and hands it to the mailer.
func (s *UserService) IssueResetToken(email string) (string, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	tok, err := token.Issue(usr.ID, token.AudiencePasswordReset, config.ResetTokenTTL, token.Fingerprint(usr.PasswordHash))
	if err != nil {
		return "", err
	}

	if err := s.Mailer.SendPasswordReset(usr.Email, tok); err != nil {
		log.Warn().Err(err).Uint("user_id", usr.ID).Msg("password reset mail failed")
	}
	return tok, nil
}

// ConsumeResetToken sets a new password. Once the password changes the
// token's fingerprint no longer matches, so a token works at most once.
func (s *UserService) ConsumeResetToken(tokenStr, newPassword string) error {
	if newPassword == "" {
		return NewValidationError("new_password", "is required")
	}

	claims, err := token.Parse(tokenStr, token.AudiencePasswordReset)
	if err != nil {
		return ErrInvalidResetToken
	}

	usr, err := s.Repos.User.GetUserByID(claims.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if claims.Fingerprint == "" || claims.Fingerprint != token.Fingerprint(usr.PasswordHash) {
		return ErrInvalidResetToken
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	usr.PasswordHash = hashed
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return err
	}
	log.Info().Uint("user_id", usr.ID).Msg("password reset")
	return nil
}
