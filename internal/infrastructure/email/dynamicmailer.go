package email

import (
	"context"

	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/utils"
)

// DynamicMailer wraps MailServiceManager so callers always talk to the
// freshest SMTP configuration without holding onto a stale dialer.
type DynamicMailer struct {
	manager *MailServiceManager
	logger  logger.Interface
}

func NewDynamicMailer(manager *MailServiceManager, logger logger.Interface) *DynamicMailer {
	return &DynamicMailer{
		manager: manager,
		logger:  logger,
	}
}

func (d *DynamicMailer) Send(ctx context.Context, msg OutboundEmail) error {
	mailer := d.manager.GetMailer()
	if mailer == nil {
		d.logger.Warnw("mailer not configured, dropping outbound email",
			"to", utils.MaskEmail(msg.To),
			"subject", msg.Subject,
		)
		return ErrMailerNotConfigured
	}
	return mailer.Send(ctx, msg)
}
