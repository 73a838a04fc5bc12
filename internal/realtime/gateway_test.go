package realtime

import (
	"context"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	mockRepo "tracker/internal/mocks/repository"
	mockSvc "tracker/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T, cfg *config.RealtimeConfig) (
	*Gateway,
	*mockSvc.MockTokenService,
	*mockRepo.MockUserRepository,
	*mockRepo.MockUserActivityRepository,
	*PresenceDirectory,
	*captureSender,
) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	activityRepo := mockRepo.NewMockUserActivityRepository(t)
	directory := NewPresenceDirectory()
	registry := NewRegistry()
	bus := NewEventBus(registry, newTestLogger())
	replay := NewReplayEngine(activityRepo, directory, bus, newTestLogger(), cfg)

	sender := &captureSender{}
	registry.Add("conn-a", sender)

	gateway := NewGateway(tokenSvc, userRepo, directory, bus, replay, newTestLogger(), cfg)

	return gateway, tokenSvc, userRepo, activityRepo, directory, sender
}

// gatewayTestConfig parks the replay far in the future so connect tests can
// exercise the presence lifecycle without the replay goroutine touching the
// repositories. Cancelling the connect context reaps the goroutine.
func gatewayTestConfig() *config.RealtimeConfig {
	cfg := config.DefaultRealtimeConfig()
	cfg.ReplayDelay = time.Minute

	return cfg
}

func bearerHandshake(token string) Handshake {
	return Handshake{Auth: &AuthPayload{Token: token}}
}

func TestGateway_HandleConnect_Success(t *testing.T) {
	gateway, tokenSvc, userRepo, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenSvc.EXPECT().VerifyToken("valid-token").Return(&service.TokenClaims{
		UserID: 7,
		Email:  "rep@example.com",
		Role:   entity.RoleSalesRep,
	}, nil)
	userRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Presence: entity.OfflineSince(time.Now().UTC())}, nil)
	userRepo.EXPECT().UpdatePresence(ctx, int64(7), entity.Online()).Return(nil)

	session, err := gateway.HandleConnect(ctx, "conn-a", bearerHandshake("valid-token"))
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "conn-a", session.ConnID)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "rep@example.com", session.Email)

	connID, ok := directory.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "conn-a", connID)

	// The connecting client itself receives the ONLINE broadcast.
	events := sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "presence-changed", events[0].Event)

	payload, ok := events[0].Data.(PresenceChanged)
	require.True(t, ok)
	assert.Equal(t, int64(7), payload.UserID)
	assert.Equal(t, entity.StatusOnline, payload.Status)
	assert.Equal(t, "rep@example.com", payload.UserEmail)
}

func TestGateway_HandleConnect_HeaderToken(t *testing.T) {
	gateway, tokenSvc, userRepo, _, _, _ := createTestGateway(t, gatewayTestConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenSvc.EXPECT().VerifyToken("header-token").Return(&service.TokenClaims{
		UserID: 7,
		Email:  "rep@example.com",
	}, nil)
	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	userRepo.EXPECT().UpdatePresence(ctx, int64(7), entity.Online()).Return(nil)

	session, err := gateway.HandleConnect(ctx, "conn-a", Handshake{Authorization: "Bearer header-token"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
}

func TestGateway_HandleConnect_MissingTokenIsTerminal(t *testing.T) {
	gateway, _, _, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	session, err := gateway.HandleConnect(context.Background(), "conn-a", Handshake{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, session)

	assert.Equal(t, 0, directory.Len())
	assert.Empty(t, sender.Events())
}

func TestGateway_HandleConnect_InvalidTokenIsTerminal(t *testing.T) {
	gateway, tokenSvc, _, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	tokenSvc.EXPECT().VerifyToken("expired").Return(nil, errors.New("token is expired"))

	session, err := gateway.HandleConnect(context.Background(), "conn-a", bearerHandshake("expired"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, session)

	// A failed attempt leaves no presence trace.
	assert.Equal(t, 0, directory.Len())
	assert.Empty(t, sender.Events())
}

func TestGateway_HandleConnect_PresencePersistFailureIsNotTerminal(t *testing.T) {
	gateway, tokenSvc, userRepo, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenSvc.EXPECT().VerifyToken("valid-token").Return(&service.TokenClaims{UserID: 7}, nil)
	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	userRepo.EXPECT().UpdatePresence(ctx, int64(7), entity.Online()).
		Return(errors.New("connection refused"))

	session, err := gateway.HandleConnect(ctx, "conn-a", bearerHandshake("valid-token"))
	require.NoError(t, err)
	require.NotNil(t, session)

	_, ok := directory.Lookup(7)
	assert.True(t, ok)
	assert.Len(t, sender.Events(), 1)
}

func TestGateway_HandleConnect_WatermarkLoadFailureIsNotTerminal(t *testing.T) {
	gateway, tokenSvc, userRepo, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenSvc.EXPECT().VerifyToken("valid-token").Return(&service.TokenClaims{UserID: 7}, nil)
	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, errors.New("connection refused"))
	userRepo.EXPECT().UpdatePresence(ctx, int64(7), entity.Online()).Return(nil)

	session, err := gateway.HandleConnect(ctx, "conn-a", bearerHandshake("valid-token"))
	require.NoError(t, err)
	require.NotNil(t, session)

	_, ok := directory.Lookup(7)
	assert.True(t, ok)
	assert.Len(t, sender.Events(), 1)
}

func TestGateway_HandleDisconnect_PersistsOfflineAndBroadcasts(t *testing.T) {
	gateway, _, userRepo, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	ctx := context.Background()
	directory.Record(7, "conn-a")

	var persisted entity.Presence
	userRepo.EXPECT().UpdatePresence(ctx, int64(7), mock.AnythingOfType("entity.Presence")).
		Run(func(_ context.Context, _ int64, presence entity.Presence) {
			persisted = presence
		}).
		Return(nil)

	gateway.HandleDisconnect(ctx, &Session{ConnID: "conn-a", UserID: 7, Email: "rep@example.com"})

	assert.Equal(t, 0, directory.Len())

	lastSeen, ok := persisted.LastSeen()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC(), lastSeen, time.Minute)

	events := sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "presence-changed", events[0].Event)

	payload, ok := events[0].Data.(PresenceChanged)
	require.True(t, ok)
	assert.Equal(t, entity.StatusOffline, payload.Status)
}

func TestGateway_HandleDisconnect_BroadcastsEvenWhenPersistFails(t *testing.T) {
	gateway, _, userRepo, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	ctx := context.Background()
	directory.Record(7, "conn-a")

	userRepo.EXPECT().UpdatePresence(ctx, int64(7), mock.AnythingOfType("entity.Presence")).
		Return(errors.New("connection refused"))

	gateway.HandleDisconnect(ctx, &Session{ConnID: "conn-a", UserID: 7})

	events := sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "presence-changed", events[0].Event)
}

func TestGateway_HandleDisconnect_SupersededConnectionSkipsTeardown(t *testing.T) {
	gateway, _, _, _, directory, sender := createTestGateway(t, gatewayTestConfig())

	// conn-b reconnected before conn-a's close arrived.
	directory.Record(7, "conn-b")

	gateway.HandleDisconnect(context.Background(), &Session{ConnID: "conn-a", UserID: 7})

	// The user stays online: no presence write, no OFFLINE broadcast.
	connID, ok := directory.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "conn-b", connID)
	assert.Empty(t, sender.Events())
}

func TestGateway_HandleDisconnect_NilSessionIsNoOp(t *testing.T) {
	gateway, _, _, _, _, sender := createTestGateway(t, gatewayTestConfig())

	gateway.HandleDisconnect(context.Background(), nil)

	assert.Empty(t, sender.Events())
}

func TestGateway_HandleOnlineUsers_UnicastsRoster(t *testing.T) {
	gateway, _, userRepo, _, _, sender := createTestGateway(t, gatewayTestConfig())

	ctx := context.Background()

	userRepo.EXPECT().FindOnline(ctx).Return([]*entity.User{
		{ID: 7, Name: "Ada", Email: "ada@example.com", Score: 120, Presence: entity.Online()},
		{ID: 9, Name: "Grace", Email: "grace@example.com", Score: 80, Presence: entity.Online()},
	}, nil)

	gateway.HandleOnlineUsers(ctx, &Session{ConnID: "conn-a", UserID: 7})

	events := sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "online-users", events[0].Event)

	payload, ok := events[0].Data.(OnlineUsers)
	require.True(t, ok)
	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.Users, 2)
	assert.Equal(t, "Ada", payload.Users[0].Name)
	assert.Equal(t, entity.StatusOnline, payload.Users[0].Status)
	assert.Nil(t, payload.Users[0].LastSeen)
}

func TestGateway_HandlePing_AnswersWithPong(t *testing.T) {
	gateway, _, _, _, _, sender := createTestGateway(t, gatewayTestConfig())

	gateway.HandlePing(context.Background(), &Session{ConnID: "conn-a", UserID: 7})

	events := sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "pong", events[0].Event)

	payload, ok := events[0].Data.(Pong)
	require.True(t, ok)
	assert.Equal(t, int64(7), payload.UserID)
	assert.False(t, payload.Timestamp.IsZero())
}

func TestGateway_ReconnectReplaysMissedActivity(t *testing.T) {
	cfg := config.DefaultRealtimeConfig()
	cfg.ReplayDelay = 0
	cfg.ReplayInterval = 0
	gateway, tokenSvc, userRepo, activityRepo, _, sender := createTestGateway(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An offline gap well beyond the lookback window: the replay must use the
	// durable watermark captured before the ONLINE write clears it, not the
	// lookback fallback.
	watermark := time.Now().UTC().Add(-2 * time.Hour)

	tokenSvc.EXPECT().VerifyToken("valid-token").Return(&service.TokenClaims{
		UserID: 7,
		Email:  "rep@example.com",
	}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.User{ID: 7, Presence: entity.OfflineSince(watermark)}, nil)
	userRepo.EXPECT().UpdatePresence(mock.Anything, int64(7), entity.Online()).Return(nil)
	activityRepo.EXPECT().FindCreatedAfter(mock.Anything, watermark, 1000).
		Return(missedActivities(watermark, 3), nil)

	_, err := gateway.HandleConnect(ctx, "conn-a", bearerHandshake("valid-token"))
	require.NoError(t, err)

	// presence-changed plus replay-start, three records and replay-end.
	require.Eventually(t, func() bool {
		return len(sender.Events()) == 6
	}, 2*time.Second, 10*time.Millisecond)

	events := sender.Events()
	assert.Equal(t, "presence-changed", events[0].Event)
	assert.Equal(t, "replay-start", events[1].Event)
	assert.Equal(t, "replay-activity", events[2].Event)
	assert.Equal(t, "replay-activity", events[3].Event)
	assert.Equal(t, "replay-activity", events[4].Event)
	assert.Equal(t, "replay-end", events[5].Event)

	end, ok := events[5].Data.(ReplayEnd)
	require.True(t, ok)
	assert.Equal(t, 3, end.TotalCount)
}
