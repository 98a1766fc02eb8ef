package notify

import (
	"context"

	"go.uber.org/multierr"
)

// Notifier delivers the post-run summary of an audit somewhere.
type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans a notification out to every configured channel. Delivery is
// best-effort per channel: one failing webhook must not silence the rest,
// so errors are collected rather than short-circuiting.
type Multi []Notifier

var _ Notifier = Multi(nil)

func (m Multi) Send(ctx context.Context, title, text string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, title, text))
	}
	return errs
}
