package application

import (
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
)

type ResetView struct {
	Reset      domain.ResetID `json:"reset"`
	StartedAt  time.Time      `json:"startedAt"`
	LastSeenAt time.Time      `json:"lastSeenAt"`
	DurationMs int64          `json:"durationMs"`
	IsOngoing  bool           `json:"isOngoing"`
}

type LeaderboardRow struct {
	Rank        int                `json:"rank"`
	AgentSymbol domain.AgentSymbol `json:"agentSymbol"`
	Credits     int64              `json:"credits"`
	ShipCount   int64              `json:"shipCount"`
	Value       int64              `json:"value"`
	Color       domain.Color       `json:"color"`
}

type LeaderboardView struct {
	Reset       domain.ResetID          `json:"reset"`
	Field       domain.LeaderboardField `json:"field"`
	TotalAgents int                     `json:"totalAgents"`
	Rows        []LeaderboardRow        `json:"rows"`
}

type MaterialRow struct {
	TradeSymbol            domain.TradeSymbol `json:"tradeSymbol"`
	NumStartedDeliveries   int                `json:"numStartedDeliveries"`
	NumCompletedDeliveries int                `json:"numCompletedDeliveries"`
	FastestFirstDeliveryMs *int64             `json:"fastestFirstDeliveryMs"`
	FastestLastDeliveryMs  *int64             `json:"fastestLastDeliveryMs"`
	FastestConstructionMs  *int64             `json:"fastestConstructionMs"`
}

type MaterialsView struct {
	Reset     domain.ResetID `json:"reset"`
	Materials []MaterialRow  `json:"materials"`
}

type GateMaterialRow struct {
	TradeSymbol domain.TradeSymbol `json:"tradeSymbol"`
	Fulfilled   int64              `json:"fulfilled"`
	Required    int64              `json:"required"`
}

type GateRow struct {
	JumpGateWaypointSymbol domain.WaypointSymbol `json:"jumpGateWaypointSymbol"`
	AgentsInSystem         []domain.AgentSymbol  `json:"agentsInSystem"`
	Materials              []GateMaterialRow     `json:"materials"`
	Progress               float64               `json:"progress"`
	IsComplete             bool                  `json:"isComplete"`
}

type JumpGateView struct {
	Reset             domain.ResetID `json:"reset"`
	NumTrackedAgents  int            `json:"numTrackedAgents"`
	NumTrackedGates   int            `json:"numTrackedGates"`
	NumGatesStarted   int            `json:"numGatesStarted"`
	NumGatesCompleted int            `json:"numGatesCompleted"`
	Gates             []GateRow      `json:"gates"`
}

type DashboardView struct {
	Reset       domain.ResetID  `json:"reset"`
	Leaderboard LeaderboardView `json:"leaderboard"`
	JumpGates   JumpGateView    `json:"jumpGates"`
	Materials   MaterialsView   `json:"materials"`
}

type HistoryRow struct {
	AgentSymbol   domain.AgentSymbol `json:"agentSymbol"`
	Color         domain.Color       `json:"color"`
	DataPoints    int                `json:"dataPoints"`
	LatestAt      time.Time          `json:"latestAt"`
	LatestCredits int64              `json:"latestCredits"`
	LatestShips   int64              `json:"latestShips"`
	PeakCredits   int64              `json:"peakCredits"`
}

type HistoryView struct {
	Reset  domain.ResetID `json:"reset"`
	Agents []HistoryRow   `json:"agents"`
}

type RankRow struct {
	Reset       domain.ResetID     `json:"reset"`
	AgentSymbol domain.AgentSymbol `json:"agentSymbol"`
	Credits     int64              `json:"credits"`
	Rank        int                `json:"rank"`
}

type RanksView struct {
	MaxRank     string    `json:"maxRank"`
	ResetWindow string    `json:"resetWindow"`
	Rows        []RankRow `json:"rows"`
}

type SelectionView struct {
	Reset  domain.ResetID       `json:"reset"`
	Agents []domain.AgentSymbol `json:"agents"`
	Saved  bool                 `json:"saved"`
}
