package testutils

import (
	"sync"
	"time"
)

type SentMail struct {
	To      string
	Kind    string
	Token   string
	Project string
}

// RecordingMailer keeps outgoing messages in memory so tests can pick up
// the tokens they carry.
type RecordingMailer struct {
	mu   sync.Mutex
	sent []SentMail
}

func (m *RecordingMailer) SendInvitation(email, projectName, token string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: email, Kind: "invitation", Token: token, Project: projectName})
	return nil
}

func (m *RecordingMailer) SendPasswordReset(email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: email, Kind: "password_reset", Token: token})
	return nil
}

// Last returns the most recent message of the given kind sent to email.
func (m *RecordingMailer) Last(kind, email string) (SentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].Kind == kind && m.sent[i].To == email {
			return m.sent[i], true
		}
	}
	return SentMail{}, false
}
