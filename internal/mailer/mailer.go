package mailer

import "gopkg.in/gomail.v2"

// Mailer sends plain-text notification mails. Sends are best-effort:
// callers log failures and carry on, a mail error never fails the
// request that triggered it.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP delivers through a single SMTP account via gomail.
type SMTP struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTP(host string, port int, username, password, from string) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password, from: from}
}

func (m *SMTP) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return gomail.NewDialer(m.host, m.port, m.username, m.password).DialAndSend(msg)
}

// Noop swallows every mail. Used when mail is not configured and in
// tests.
type Noop struct{}

func (Noop) Send(to, subject, body string) error { return nil }
