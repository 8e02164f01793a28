package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skyblock-market/contract"
	"skyblock-market/errors"
	"skyblock-market/observability"
)

// NotificationDispatcher sends point-to-point owner notifications.
// Delivery is best-effort: a failure becomes ErrNotificationFailed for
// the caller to surface as a soft warning, never a rollback.
type NotificationDispatcher struct {
	log       *slog.Logger
	messenger contract.IMessenger
	stats     *observability.MarketStats
	timeout   time.Duration
}

func NewNotificationDispatcher(
	log *slog.Logger,
	messenger contract.IMessenger,
	stats *observability.MarketStats,
	timeout time.Duration,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		log:       log,
		messenger: messenger,
		stats:     stats,
		timeout:   timeout,
	}
}

func (d *NotificationDispatcher) NotifyOwner(ctx context.Context, ownerID string, notification contract.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.messenger.DirectMessage(ctx, ownerID, notification); err != nil {
		d.stats.IncrNotifyFailures()
		d.log.Warn("Owner notification failed", "owner", ownerID, "title", notification.Title, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrNotificationFailed, err)
	}
	return nil
}
