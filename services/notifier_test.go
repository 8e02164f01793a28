package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"skyblock-market/contract"
	"skyblock-market/errors"
	"skyblock-market/mocks"
	"skyblock-market/observability"
)

func TestNotificationDispatcher_NotifyOwner(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notification := contract.Notification{Title: "💰 New Offer Received"}

	t.Run("should deliver with a deadline", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messenger := mocks.NewMockIMessenger(ctrl)
		dispatcher := NewNotificationDispatcher(log, messenger, observability.NewMarketStats(log), time.Second)

		messenger.EXPECT().
			DirectMessage(gomock.Any(), "seller-1", notification).
			DoAndReturn(func(ctx context.Context, _ string, _ contract.Notification) error {
				_, hasDeadline := ctx.Deadline()
				require.True(t, hasDeadline)
				return nil
			})

		req.NoError(dispatcher.NotifyOwner(context.Background(), "seller-1", notification))
	})

	t.Run("should convert a delivery error into ErrNotificationFailed", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messenger := mocks.NewMockIMessenger(ctrl)
		stats := observability.NewMarketStats(log)
		dispatcher := NewNotificationDispatcher(log, messenger, stats, time.Second)

		messenger.EXPECT().
			DirectMessage(gomock.Any(), "seller-1", notification).
			Return(fmt.Errorf("dm channel closed"))

		err := dispatcher.NotifyOwner(context.Background(), "seller-1", notification)

		req.ErrorIs(err, errors.ErrNotificationFailed)
		req.Equal(uint64(1), stats.NotifyFailures)
	})
}
