package realtime

import (
	"context"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	mockRepo "tracker/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReplayEngine(t *testing.T, cfg *config.RealtimeConfig) (
	*ReplayEngine,
	*mockRepo.MockUserActivityRepository,
	*PresenceDirectory,
	*captureSender,
) {
	activityRepo := mockRepo.NewMockUserActivityRepository(t)
	directory := NewPresenceDirectory()
	registry := NewRegistry()
	bus := NewEventBus(registry, newTestLogger())

	sender := &captureSender{}
	registry.Add("conn-a", sender)

	engine := NewReplayEngine(activityRepo, directory, bus, newTestLogger(), cfg)

	return engine, activityRepo, directory, sender
}

func replayTestConfig() *config.RealtimeConfig {
	cfg := config.DefaultRealtimeConfig()
	cfg.ReplayInterval = 0
	cfg.ReplayDelay = 0

	return cfg
}

func missedActivities(base time.Time, count int) []*entity.UserActivity {
	records := make([]*entity.UserActivity, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, &entity.UserActivity{
			ID:             int64(i + 1),
			UserID:         9,
			PropertyID:     3,
			ActivityTypeID: 2,
			CreatedAt:      base.Add(time.Duration(i+1) * time.Minute),
		})
	}

	return records
}

func TestReplayEngine_Run_DeliversStartRecordsEnd(t *testing.T) {
	engine, activityRepo, directory, sender := createTestReplayEngine(t, replayTestConfig())

	ctx := context.Background()
	watermark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	activityRepo.EXPECT().FindCreatedAfter(ctx, watermark, 1000).
		Return(missedActivities(watermark, 3), nil)

	directory.Record(7, "conn-a")

	require.NoError(t, engine.Run(ctx, 7, watermark))

	events := sender.Events()
	require.Len(t, events, 5)

	assert.Equal(t, "replay-start", events[0].Event)
	start, ok := events[0].Data.(ReplayStart)
	require.True(t, ok)
	assert.Equal(t, 3, start.TotalCount)

	for i := 1; i <= 3; i++ {
		assert.Equal(t, "replay-activity", events[i].Event)
		item, ok := events[i].Data.(ReplayActivity)
		require.True(t, ok)
		assert.Equal(t, i, item.ReplayIndex)
		assert.Equal(t, 3, item.TotalCount)
		assert.Equal(t, int64(i), item.Record.ID)
	}

	assert.Equal(t, "replay-end", events[4].Event)
	end, ok := events[4].Data.(ReplayEnd)
	require.True(t, ok)
	assert.Equal(t, 3, end.TotalCount)
	assert.GreaterOrEqual(t, end.TotalDurationMs, int64(0))
}

func TestReplayEngine_Run_NothingMissedSendsNothing(t *testing.T) {
	engine, activityRepo, directory, sender := createTestReplayEngine(t, replayTestConfig())

	ctx := context.Background()
	watermark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	activityRepo.EXPECT().FindCreatedAfter(ctx, watermark, 1000).
		Return(nil, nil)

	directory.Record(7, "conn-a")

	require.NoError(t, engine.Run(ctx, 7, watermark))
	assert.Empty(t, sender.Events())
}

func TestReplayEngine_Run_ZeroWatermarkUsesLookbackWindow(t *testing.T) {
	engine, activityRepo, directory, sender := createTestReplayEngine(t, replayTestConfig())

	ctx := context.Background()

	// No disconnect was ever recorded for this user.
	activityRepo.EXPECT().FindCreatedAfter(ctx, mock.AnythingOfType("time.Time"), 1000).
		Return(missedActivities(time.Now().UTC(), 1), nil)

	directory.Record(7, "conn-a")

	require.NoError(t, engine.Run(ctx, 7, time.Time{}))

	events := sender.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "replay-start", events[0].Event)
}

func TestReplayEngine_Run_ZeroWatermarkZeroLookbackSkipsReplay(t *testing.T) {
	cfg := replayTestConfig()
	cfg.ReplayLookback = 0
	engine, _, directory, sender := createTestReplayEngine(t, cfg)

	directory.Record(7, "conn-a")

	require.NoError(t, engine.Run(context.Background(), 7, time.Time{}))
	assert.Empty(t, sender.Events())
}

func TestReplayEngine_Run_NoCurrentConnectionSkipsReplay(t *testing.T) {
	engine, _, _, sender := createTestReplayEngine(t, replayTestConfig())

	watermark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, engine.Run(context.Background(), 7, watermark))
	assert.Empty(t, sender.Events())
}

func TestReplayEngine_Run_CancelledContextStopsPacing(t *testing.T) {
	cfg := replayTestConfig()
	cfg.ReplayInterval = 50 * time.Millisecond
	engine, activityRepo, directory, sender := createTestReplayEngine(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	watermark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	activityRepo.EXPECT().FindCreatedAfter(ctx, watermark, 1000).
		Return(missedActivities(watermark, 3), nil)

	directory.Record(7, "conn-a")
	cancel()

	err := engine.Run(ctx, 7, watermark)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// The first record goes out before the first pacing wait; the cancel cuts
	// the loop before the second.
	events := sender.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "replay-start", events[0].Event)
	assert.Equal(t, "replay-activity", events[1].Event)
}
