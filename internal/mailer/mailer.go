package mailer

import (
	"fmt"
	"log"

	"github.com/apan-dev/apan-server/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail through the configured SMTP relay. It is
// constructed once at process start and injected into the handlers that need
// it.
type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
	dev         bool
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:        cfg.MailFrom,
		frontendURL: cfg.FrontendURL,
		dev:         cfg.IsDevelopment(),
	}
}

// SendPasswordReset mails a reset link embedding the opaque token. In
// development the mail is logged instead of sent.
func (m *Mailer) SendPasswordReset(to, name, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", m.frontendURL, token)
	subject, text, html := passwordResetTemplate(name, resetURL)

	if m.dev {
		log.Printf("Password reset email (dev mode): to=%s url=%s", to, resetURL)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	return m.dialer.DialAndSend(msg)
}
