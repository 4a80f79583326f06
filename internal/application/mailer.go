package application

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Mailer delivers invitation and password reset messages.
type Mailer interface {
	SendInvitation(email, projectName, token string, expiresAt time.Time) error
	SendPasswordReset(email, token string) error
}

// LogMailer writes outgoing messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) SendInvitation(email, projectName, token string, expiresAt time.Time) error {
	log.Info().
		Str("to", email).
		Str("project", projectName).
		Str("token", token).
		Time("expires_at", expiresAt).
		Msg("invitation mail")
	return nil
}

func (LogMailer) SendPasswordReset(email, token string) error {
	log.Info().Str("to", email).Str("token", token).Msg("password reset mail")
	return nil
}
