package realtime

import (
	"context"
	"log/slog"
	"time"
)

// EventBus fans outbound events to live connections. Delivery is
// fire-and-forget: a slow or gone connection never blocks the emitter or the
// other recipients.
type EventBus struct {
	registry *Registry
	logger   *slog.Logger
	now      func() time.Time
}

// NewEventBus creates a bus over the shared connection registry.
func NewEventBus(registry *Registry, logger *slog.Logger) *EventBus {
	return &EventBus{
		registry: registry,
		logger:   logger,
		now:      time.Now,
	}
}

// Broadcast emits one event to every live connection.
func (b *EventBus) Broadcast(ctx context.Context, event Event) {
	envelope := b.envelope(event)

	b.registry.Each(func(connID string, sender Sender) {
		if err := sender.Send(envelope); err != nil {
			b.logger.LogAttrs(ctx, slog.LevelDebug, "broadcast send dropped",
				slog.String("event", envelope.Event),
				slog.String("connID", connID),
				slog.String("error", err.Error()),
			)
		}
	})
}

// Unicast emits one event to a single connection. A connection that is no
// longer registered makes this a logged no-op.
func (b *EventBus) Unicast(ctx context.Context, connID string, event Event) {
	envelope := b.envelope(event)

	sender, ok := b.registry.Get(connID)
	if !ok {
		b.logger.LogAttrs(ctx, slog.LevelDebug, "unicast target gone",
			slog.String("event", envelope.Event),
			slog.String("connID", connID),
		)

		return
	}

	if err := sender.Send(envelope); err != nil {
		b.logger.LogAttrs(ctx, slog.LevelDebug, "unicast send dropped",
			slog.String("event", envelope.Event),
			slog.String("connID", connID),
			slog.String("error", err.Error()),
		)
	}
}

func (b *EventBus) envelope(event Event) Envelope {
	return Envelope{
		Event:     event.EventName(),
		Data:      event,
		Timestamp: b.now().UTC(),
	}
}
