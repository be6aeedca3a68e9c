// Package notify implements the user-facing outcome channel. The original
// front end surfaced outcomes as toasts; server-side the channel is a
// structured log stream clients can mirror.
package notify

import (
	"context"
	"log/slog"

	"campuseventhub/internal/domain"
)

type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier returns a Notifier that writes outcomes to the given
// logger, one entry per outcome.
func NewSlogNotifier(logger *slog.Logger) domain.Notifier {
	return &slogNotifier{logger: logger}
}

func (n *slogNotifier) Success(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "notify", "outcome", "success", "message", message)
}

func (n *slogNotifier) Error(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "notify", "outcome", "error", "message", message)
}
