package domain

import "context"

// Notifier is the user-facing outcome channel. Services report exactly one
// notification per operation outcome; how the message is rendered is up to
// the implementation.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
