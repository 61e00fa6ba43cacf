package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache abstracts the key-value cache used for public content reads.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// EmailMessage is one templated transactional email.
type EmailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer sends a single email. Each send succeeds or fails independently;
// the pipeline never retries and never lets a failure change its outcome.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// LeadBackup mirrors a contact lead to the legacy spreadsheet endpoint.
// Best-effort by policy: callers log failures and move on.
type LeadBackup interface {
	Backup(ctx context.Context, lead *Lead) error
}
