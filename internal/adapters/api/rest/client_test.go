package rest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, cacheTTL time.Duration) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/", CacheTTL: cacheTTL, CacheSize: 8}, server.Client(), nil)
	require.NoError(t, err)
	return client
}

func TestClientListResets(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = fmt.Fprint(w, `[
			{"reset":"2024-03-10","firstTs":"2024-03-10T12:00:00Z","lastTs":"2024-03-12T14:00:00Z","isOngoing":true},
			{"reset":"2024-02-18","firstTs":"2024-02-18T12:00:00Z","lastTs":null,"isOngoing":false},
			{"reset":"","isOngoing":false}
		]`)
	}), 0)

	resets, err := client.ListResets(context.Background())
	require.NoError(t, err)
	require.Len(t, resets, 2)
	assert.Equal(t, domain.Reset{
		ID:        "2024-03-10",
		FirstTs:   time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		LastTs:    time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC),
		IsOngoing: true,
	}, resets[0])
	assert.True(t, resets[1].LastTs.IsZero())
}

func TestClientGetLeaderboardStampsReset(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboard/2024-03-10", r.URL.Path)
		_, _ = fmt.Fprint(w, `[{"agentSymbol":"WHYANDO","credits":1250000,"shipCount":12}]`)
	}), 0)

	entries, err := client.GetLeaderboard(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.LeaderboardEntry{
		{Reset: "2024-03-10", AgentSymbol: "WHYANDO", Credits: 1_250_000, ShipCount: 12},
	}, entries)
}

func TestClientGetConstructionProgressHandlesNullTimestamps(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset/2024-03-10/jump-gate/construction-progress", r.URL.Path)
		_, _ = fmt.Fprint(w, `[{
			"jumpGateWaypointSymbol":"X1-AB12-I55",
			"tradeSymbol":"FAB_MATS",
			"fulfilled":120,
			"required":1600,
			"tsStartOfReset":"2024-03-10T12:00:00Z",
			"tsFirstConstructionEvent":"2024-03-10T20:30:00Z",
			"tsLastConstructionEvent":null,
			"isJumpGateComplete":false
		}]`)
	}), 0)

	entries, err := client.GetConstructionProgress(context.Background(), "2024-03-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.WaypointSymbol("X1-AB12-I55"), entries[0].JumpGateWaypointSymbol)
	assert.Equal(t, int64(120), entries[0].Fulfilled)
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), entries[0].TsStartOfReset)
	assert.True(t, entries[0].TsLastConstructionEvent.IsZero())
}

func TestClientLogsMalformedConstructionProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[
			{"jumpGateWaypointSymbol":"X1-AB12-I55","tradeSymbol":"FAB_MATS","fulfilled":1700,"required":1600},
			{"jumpGateWaypointSymbol":"X1-AB12-I55","tradeSymbol":"ADVANCED_CIRCUITRY","fulfilled":40,"required":400}
		]`)
	}))
	t.Cleanup(server.Close)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client, err := NewClient(Config{BaseURL: server.URL}, server.Client(), logger)
	require.NoError(t, err)

	entries, err := client.GetConstructionProgress(context.Background(), "2024-03-10")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, logs.String(), "malformed construction progress entry")
	assert.Contains(t, logs.String(), "material=FAB_MATS")
	assert.NotContains(t, logs.String(), "material=ADVANCED_CIRCUITRY")
}

func TestClientGetJumpGateAssignments(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset/2024-03-10/jump-gate/assignment", r.URL.Path)
		_, _ = fmt.Fprint(w, `[{"jumpGateWaypointSymbol":"X1-AB12-I55","agentsInSystem":["ALPHA","BETA"]}]`)
	}), 0)

	assignments, err := client.GetJumpGateAssignments(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.JumpGateAssignment{
		{JumpGateWaypointSymbol: "X1-AB12-I55", AgentsInSystem: []domain.AgentSymbol{"ALPHA", "BETA"}},
	}, assignments)
}

func TestClientGetHistorySendsAgentSymbolsAndZipsSeries(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history/2024-03-10", r.URL.Path)
		assert.Equal(t, "ALPHA,BETA", r.URL.Query().Get("agent_symbols"))
		_, _ = fmt.Fprint(w, `[{
			"agentSymbol":"ALPHA",
			"eventTimes":["2024-03-10T12:00:00Z","2024-03-10T13:00:00Z","2024-03-10T14:00:00Z"],
			"credits":[175000,210000],
			"shipCount":[2,3,4]
		}]`)
	}), 0)

	histories, err := client.GetHistory(context.Background(), "2024-03-10", []domain.AgentSymbol{"ALPHA", "BETA"})
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Len(t, histories[0].Points, 2)
	assert.Equal(t, int64(210_000), histories[0].LatestCredits())
}

func TestClientGetHistoryWithoutAgentsSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), 0)

	histories, err := client.GetHistory(context.Background(), "2024-03-10", nil)
	require.NoError(t, err)
	assert.Empty(t, histories)
	assert.Zero(t, calls.Load())
}

func TestClientGetAllTimeRanks(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all-time/ranks", r.URL.Path)
		_, _ = fmt.Fprint(w, `[{"reset":"2024-03-10","agentSymbol":"ALPHA","credits":5,"rank":1}]`)
	}), 0)

	rows, err := client.GetAllTimeRanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.RankedEntry{{Reset: "2024-03-10", AgentSymbol: "ALPHA", Credits: 5, Rank: 1}}, rows)
}

func TestClientMapsNotFoundToResetNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), 0)

	_, err := client.GetLeaderboard(context.Background(), "1999-01-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResetNotFound)
	assert.Contains(t, err.Error(), "1999-01-01")
}

func TestClientReturnsStatusAndBodyOnServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
	}), 0)

	_, err := client.ListResets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503: database unavailable")
	assert.NotErrorIs(t, err, domain.ErrResetNotFound)
}

func TestClientRejectsMalformedPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"not":"a list"}`)
	}), 0)

	_, err := client.ListResets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode payload")
}

func TestClientCachesResponsesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = fmt.Fprint(w, `[{"reset":"2024-03-10","isOngoing":true}]`)
	}), time.Minute)

	for i := 0; i < 3; i++ {
		resets, err := client.ListResets(context.Background())
		require.NoError(t, err)
		require.Len(t, resets, 1)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestClientDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		_, _ = fmt.Fprint(w, `[]`)
	}), time.Minute)

	_, err := client.ListResets(context.Background())
	require.Error(t, err)

	_, err = client.ListResets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "  "}, nil, nil)
	require.Error(t, err)
}

func TestResponseCacheExpiresEntries(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cache, err := newResponseCache(4, time.Minute, func() time.Time { return now })
	require.NoError(t, err)

	cache.put("key", []byte("body"))
	body, ok := cache.get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("body"), body)

	now = now.Add(2 * time.Minute)
	_, ok = cache.get("key")
	assert.False(t, ok)
}

func TestResponseCacheDisabledWithoutTTL(t *testing.T) {
	cache, err := newResponseCache(4, 0, time.Now)
	require.NoError(t, err)
	assert.Nil(t, cache)

	cache.put("key", []byte("body"))
	_, ok := cache.get("key")
	assert.False(t, ok)
}
