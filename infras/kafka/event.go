package kafka

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventTicketCancelled  = "ticket.cancelled"
	EventLegacyMigrated   = "booking.legacy_migrated"
	EventLegacyReverted   = "booking.legacy_reverted"
)

// Event is the envelope every domain event is published in.
type Event struct {
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	ActorID     string    `json:"actor_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload,omitempty"`
}

// PublishAsync publishes an event off the request path. The request context is
// detached so the write survives the client disconnecting.
func PublishAsync(ctx context.Context, publisher Publisher, topic string, event Event) {
	if publisher == nil || topic == "" {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := publisher.Publish(c, topic, Message{Key: event.AggregateID, Value: event})
		if err != nil {
			log.Warn().Err(err).Str("event", event.Type).Str("aggregate_id", event.AggregateID).Msg("failed to publish domain event")
		}
	}()
}
