package email

import (
	"context"
	"errors"
)

// ErrMailerNotConfigured is returned when SMTP settings are absent and an
// email send is attempted.
var ErrMailerNotConfigured = errors.New("mailer not configured")

// Attachment is a file attached to an outbound email. Either Path points at a
// file on disk or Content carries the bytes in memory.
type Attachment struct {
	Filename string
	Path     string
	Content  []byte
}

// OutboundEmail is a fully rendered message ready for delivery.
type OutboundEmail struct {
	To          string
	Cc          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers rendered messages. Implementations must respect ctx
// cancellation so a stuck SMTP server cannot stall a notification pass.
type Mailer interface {
	Send(ctx context.Context, msg OutboundEmail) error
}
