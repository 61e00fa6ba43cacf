package service

import (
	"context"
	"sync"

	"fireforge/internal/domain"
)

// notification pairs a recipient role with the message to deliver. The role
// only exists for logging; it never reaches the caller.
type notification struct {
	Recipient string
	Message   domain.EmailMessage
}

// settleAll dispatches every notification concurrently and waits for all of
// them to finish, collecting each outcome independently. One send failing
// never cancels or hides the other: this is the explicit settle-all join the
// pipelines rely on so notification failures stay observable in logs while
// remaining invisible to the caller.
func settleAll(ctx context.Context, mailer domain.Mailer, notifications []notification) []error {
	errs := make([]error, len(notifications))
	var wg sync.WaitGroup
	for i := range notifications {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = mailer.Send(ctx, notifications[i].Message)
		}(i)
	}
	wg.Wait()
	return errs
}
