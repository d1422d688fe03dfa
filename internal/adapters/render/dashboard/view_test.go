package dashboard

import (
	"testing"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	numbers, err := NewNumberFormatter("en")
	require.NoError(t, err)
	return NewRenderer(numbers)
}

func sampleLeaderboard() application.LeaderboardView {
	return application.LeaderboardView{
		Reset:       "2024-03-10",
		Field:       domain.LeaderboardFieldCredits,
		TotalAgents: 32,
		Rows: []application.LeaderboardRow{
			{Rank: 1, AgentSymbol: "BETA", Credits: 1_500_000, ShipCount: 3, Value: 1_500_000, Color: "#4e79a7"},
			{Rank: 2, AgentSymbol: "GAMMA", Credits: 250_000, ShipCount: 12, Value: 250_000, Color: "#f28e2b"},
		},
	}
}

func sampleJumpGates() application.JumpGateView {
	return application.JumpGateView{
		Reset:             "2024-03-10",
		NumTrackedAgents:  3,
		NumTrackedGates:   2,
		NumGatesStarted:   2,
		NumGatesCompleted: 1,
		Gates: []application.GateRow{
			{
				JumpGateWaypointSymbol: "X1-AB12-I61",
				AgentsInSystem:         []domain.AgentSymbol{"ALPHA"},
				Materials: []application.GateMaterialRow{
					{TradeSymbol: "FAB_MATS", Fulfilled: 1600, Required: 1600},
				},
				Progress:   1,
				IsComplete: true,
			},
			{
				JumpGateWaypointSymbol: "X1-CD34-I52",
				AgentsInSystem:         []domain.AgentSymbol{"BETA", "GAMMA"},
				Materials: []application.GateMaterialRow{
					{TradeSymbol: "FAB_MATS", Fulfilled: 640, Required: 1600},
				},
				Progress: 0.4,
			},
		},
	}
}

func sampleMaterials() application.MaterialsView {
	first := (52*time.Hour + 13*time.Minute).Milliseconds()
	return application.MaterialsView{
		Reset: "2024-03-10",
		Materials: []application.MaterialRow{
			{TradeSymbol: "ADVANCED_CIRCUITRY", NumStartedDeliveries: 4, NumCompletedDeliveries: 1, FastestFirstDeliveryMs: &first},
		},
	}
}

func TestRenderLeaderboard(t *testing.T) {
	output, err := newTestRenderer(t).Leaderboard(sampleLeaderboard())

	require.NoError(t, err)
	assert.Contains(t, output, "Leaderboard 2024-03-10")
	assert.Contains(t, output, "agents: 32, by credits")
	assert.Contains(t, output, "BETA")
	assert.Contains(t, output, "1,500,000")
	assert.Contains(t, output, "250,000")
	assert.Contains(t, output, "█")
	assert.Contains(t, output, "30 more agents not shown")
}

func TestRenderLeaderboardEmpty(t *testing.T) {
	output, err := newTestRenderer(t).Leaderboard(application.LeaderboardView{
		Reset: "2024-03-10",
		Field: domain.LeaderboardFieldShips,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "by ships")
	assert.Contains(t, output, "No agents on the leaderboard.")
}

func TestRenderJumpGates(t *testing.T) {
	output, err := newTestRenderer(t).JumpGates(sampleJumpGates())

	require.NoError(t, err)
	assert.Contains(t, output, "agents tracked: 3")
	assert.Contains(t, output, "gates tracked: 2")
	assert.Contains(t, output, "gates started: 2")
	assert.Contains(t, output, "gates completed: 1")
	assert.Contains(t, output, "X1-AB12-I61")
	assert.Contains(t, output, "complete")
	assert.Contains(t, output, "in progress")
	assert.Contains(t, output, "40%")
	assert.Contains(t, output, "FAB_MATS 640 / 1,600")
	assert.Contains(t, output, "agents: BETA, GAMMA")
}

func TestRenderMaterials(t *testing.T) {
	output, err := newTestRenderer(t).Materials(sampleMaterials())

	require.NoError(t, err)
	assert.Contains(t, output, "ADVANCED_CIRCUITRY")
	assert.Contains(t, output, "2d 4h 13m")
	assert.Contains(t, output, "first delivery")
	assert.Contains(t, output, "-")
}

func TestRenderDashboardIncludesAllSections(t *testing.T) {
	output, err := newTestRenderer(t).Dashboard(application.DashboardView{
		Reset:       "2024-03-10",
		Leaderboard: sampleLeaderboard(),
		JumpGates:   sampleJumpGates(),
		Materials:   sampleMaterials(),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Leaderboard 2024-03-10")
	assert.Contains(t, output, "Jump gates 2024-03-10")
	assert.Contains(t, output, "Materials 2024-03-10")
}

func TestRenderResets(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	output, err := newTestRenderer(t).Resets([]application.ResetView{
		{Reset: "2024-03-10", StartedAt: start, LastSeenAt: start.Add(5 * time.Hour), DurationMs: (5 * time.Hour).Milliseconds(), IsOngoing: true},
		{Reset: "2024-02-18", DurationMs: (14 * 24 * time.Hour).Milliseconds()},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "resets: 2")
	assert.Contains(t, output, "2024-03-10 12:00")
	assert.Contains(t, output, "5h 0m")
	assert.Contains(t, output, "14d 0h 0m")
	assert.Contains(t, output, "ongoing")
}

func TestRenderHistory(t *testing.T) {
	output, err := newTestRenderer(t).History(application.HistoryView{
		Reset: "2024-03-10",
		Agents: []application.HistoryRow{
			{AgentSymbol: "BETA", DataPoints: 2, LatestAt: time.Date(2024, 3, 11, 8, 30, 0, 0, time.UTC), LatestCredits: 400_000, PeakCredits: 410_000, LatestShips: 5},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "History 2024-03-10")
	assert.Contains(t, output, "400,000")
	assert.Contains(t, output, "410,000")
	assert.Contains(t, output, "2024-03-11 08:30")
}

func TestRenderRanks(t *testing.T) {
	output, err := newTestRenderer(t).Ranks(application.RanksView{
		MaxRank:     "3",
		ResetWindow: "all",
		Rows:        []application.RankRow{{Reset: "2024-03-10", AgentSymbol: "GAMMA", Credits: 2_000_000, Rank: 2}},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "max rank: 3, resets: all")
	assert.Contains(t, output, "GAMMA")
	assert.Contains(t, output, "2,000,000")

	empty, err := newTestRenderer(t).Ranks(application.RanksView{MaxRank: "1", ResetWindow: "1"})
	require.NoError(t, err)
	assert.Contains(t, empty, "No ranked agents match the filter.")
}

func TestRenderSelection(t *testing.T) {
	output, err := newTestRenderer(t).Selection(application.SelectionView{
		Reset:  "2024-03-10",
		Agents: []domain.AgentSymbol{"ALPHA", "BETA"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "agents: 2 (default top 10)")
	assert.Contains(t, output, "ALPHA")
}
