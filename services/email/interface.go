package email

import "context"

// Mailer is the transactional email vendor.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
