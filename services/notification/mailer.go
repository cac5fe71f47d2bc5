package notification

import (
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"praxia/config"
)

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		Host: config.AppConfig.SMTPHost,
		Port: config.AppConfig.SMTPPort,
		User: config.AppConfig.SMTPUser,
		Pass: config.AppConfig.SMTPPass,
		From: config.AppConfig.SMTPFrom,
	}
}

// Send delivers a multipart text+HTML message to a single recipient.
func (m *SMTPMailer) Send(to, subject, text, html string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	var body strings.Builder
	writer := multipart.NewWriter(&body)

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return fmt.Errorf("failed to build text part: %w", err)
	}
	fmt.Fprint(textPart, text)

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return fmt.Errorf("failed to build html part: %w", err)
	}
	fmt.Fprint(htmlPart, html)

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize message: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", writer.Boundary())
	fmt.Fprintf(&msg, "\r\n%s", body.String())

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
