package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gridrival/sweepstakes/go/internal/draft"
)

// LogNotifier writes turn notifications to the log. Stands in for a real
// delivery channel (mail, chat webhook) in development and tests.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyTurn(ctx context.Context, notification draft.TurnNotification) error {
	n.logger.Info().
		Str("target_user_id", notification.TargetUserID.String()).
		Str("race_id", notification.RaceID.String()).
		Str("event_type", notification.EventType).
		Str("title", notification.Title).
		Msg(notification.Message)
	return nil
}

// PublisherNotifier routes turn notifications through an event publisher
// so a delivery worker elsewhere can pick them up.
type PublisherNotifier struct {
	publisher draft.EventPublisher
}

func NewPublisherNotifier(publisher draft.EventPublisher) *PublisherNotifier {
	return &PublisherNotifier{publisher: publisher}
}

func (n *PublisherNotifier) NotifyTurn(ctx context.Context, notification draft.TurnNotification) error {
	if err := n.publisher.Publish(ctx, "TurnNotification", notification.RaceID, notification); err != nil {
		return fmt.Errorf("publish turn notification: %w", err)
	}
	return nil
}
