package realtime

import (
	"context"
	"log/slog"
	"time"

	"tracker/config"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
)

// ReplayEngine re-delivers the activity a user missed while offline, paced at
// a fixed interval so the client can animate the catch-up instead of
// receiving one burst.
type ReplayEngine struct {
	activities repository.UserActivityRepository
	directory  *PresenceDirectory
	bus        *EventBus
	logger     *slog.Logger

	interval time.Duration
	lookback time.Duration
	maxQuery int
	now      func() time.Time
}

// NewReplayEngine creates a replay engine with the configured pacing.
func NewReplayEngine(
	activities repository.UserActivityRepository,
	directory *PresenceDirectory,
	bus *EventBus,
	logger *slog.Logger,
	cfg *config.RealtimeConfig,
) *ReplayEngine {
	return &ReplayEngine{
		activities: activities,
		directory:  directory,
		bus:        bus,
		logger:     logger,
		interval:   cfg.ReplayInterval,
		lookback:   cfg.ReplayLookback,
		maxQuery:   cfg.MaxQueryLimit,
		now:        time.Now,
	}
}

// Run replays missed activity to the user's current connection. The caller
// captures the watermark (the user's last disconnect time) before the
// ONLINE presence write clears it. A zero watermark means no disconnect was
// ever recorded; those users fall back to the configured lookback window
// (zero lookback means no replay for them). A user with no current
// connection gets nothing, silently. Mid-replay disconnects likewise
// degrade the remaining sends into no-ops while the loop finishes.
func (e *ReplayEngine) Run(ctx context.Context, userID int64, watermark time.Time) error {
	if watermark.IsZero() {
		if e.lookback <= 0 {
			return nil
		}
		watermark = e.now().Add(-e.lookback)
	}

	connID, ok := e.directory.Lookup(userID)
	if !ok {
		return nil
	}

	missed, err := e.activities.FindCreatedAfter(ctx, watermark, e.maxQuery)
	if err != nil {
		return errors.Wrap(err, "replay: failed to query missed activities")
	}
	if len(missed) == 0 {
		return nil
	}

	total := len(missed)
	started := e.now()

	e.logger.LogAttrs(ctx, slog.LevelInfo, "replaying missed activities",
		slog.Int64("userID", userID),
		slog.Int("count", total),
		slog.Time("watermark", watermark),
	)

	e.bus.Unicast(ctx, connID, ReplayStart{
		TotalCount: total,
		IntervalMs: e.interval.Milliseconds(),
	})

	for i, record := range missed {
		if i > 0 && !e.wait(ctx) {
			return ctx.Err()
		}

		e.bus.Unicast(ctx, connID, ReplayActivity{
			Record:      NewActivityPayload(record),
			ReplayIndex: i + 1,
			TotalCount:  total,
		})
	}

	if !e.wait(ctx) {
		return ctx.Err()
	}

	e.bus.Unicast(ctx, connID, ReplayEnd{
		TotalCount:      total,
		TotalDurationMs: e.now().Sub(started).Milliseconds(),
	})

	return nil
}

// wait blocks for one pacing interval. It reports false when the context was
// cancelled first.
func (e *ReplayEngine) wait(ctx context.Context) bool {
	if e.interval <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(e.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
