package email

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPMailer sends email through a single SMTP endpoint using gomail.
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPMailer{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, msg OutboundEmail) error {
	m := gomail.NewMessage()

	from := s.config.FromAddress
	if s.config.FromName != "" {
		from = m.FormatAddress(s.config.FromAddress, s.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		if att.Path != "" {
			m.Attach(att.Path, gomail.Rename(att.Filename))
			continue
		}
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	// gomail has no context support, so the dial-and-send runs on its own
	// goroutine and is raced against ctx.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send aborted: %w", ctx.Err())
	}
}
