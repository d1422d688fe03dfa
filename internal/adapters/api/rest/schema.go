package rest

import (
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
)

type resetPayload struct {
	Reset     string     `json:"reset"`
	FirstTs   *time.Time `json:"firstTs"`
	LastTs    *time.Time `json:"lastTs"`
	IsOngoing bool       `json:"isOngoing"`
}

type leaderboardEntryPayload struct {
	AgentSymbol string `json:"agentSymbol"`
	Credits     int64  `json:"credits"`
	ShipCount   int64  `json:"shipCount"`
}

type jumpGateAssignmentPayload struct {
	JumpGateWaypointSymbol string   `json:"jumpGateWaypointSymbol"`
	AgentsInSystem         []string `json:"agentsInSystem"`
}

type constructionProgressPayload struct {
	JumpGateWaypointSymbol   string     `json:"jumpGateWaypointSymbol"`
	TradeSymbol              string     `json:"tradeSymbol"`
	Fulfilled                int64      `json:"fulfilled"`
	Required                 int64      `json:"required"`
	TsStartOfReset           *time.Time `json:"tsStartOfReset"`
	TsFirstConstructionEvent *time.Time `json:"tsFirstConstructionEvent"`
	TsLastConstructionEvent  *time.Time `json:"tsLastConstructionEvent"`
	IsJumpGateComplete       bool       `json:"isJumpGateComplete"`
}

type agentHistoryPayload struct {
	AgentSymbol string      `json:"agentSymbol"`
	EventTimes  []time.Time `json:"eventTimes"`
	Credits     []int64     `json:"credits"`
	ShipCount   []int64     `json:"shipCount"`
}

type rankedEntryPayload struct {
	Reset       string `json:"reset"`
	AgentSymbol string `json:"agentSymbol"`
	Credits     int64  `json:"credits"`
	Rank        int    `json:"rank"`
}

func (p resetPayload) toDomain() domain.Reset {
	return domain.Reset{
		ID:        domain.ResetID(p.Reset),
		FirstTs:   derefTime(p.FirstTs),
		LastTs:    derefTime(p.LastTs),
		IsOngoing: p.IsOngoing,
	}
}

func (p leaderboardEntryPayload) toDomain(reset domain.ResetID) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		Reset:       reset,
		AgentSymbol: domain.AgentSymbol(p.AgentSymbol),
		Credits:     p.Credits,
		ShipCount:   p.ShipCount,
	}
}

func (p jumpGateAssignmentPayload) toDomain() domain.JumpGateAssignment {
	agents := make([]domain.AgentSymbol, 0, len(p.AgentsInSystem))
	for _, agent := range p.AgentsInSystem {
		agents = append(agents, domain.AgentSymbol(agent))
	}

	return domain.JumpGateAssignment{
		JumpGateWaypointSymbol: domain.WaypointSymbol(p.JumpGateWaypointSymbol),
		AgentsInSystem:         agents,
	}
}

func (p constructionProgressPayload) toDomain() domain.ConstructionProgressEntry {
	return domain.ConstructionProgressEntry{
		JumpGateWaypointSymbol:   domain.WaypointSymbol(p.JumpGateWaypointSymbol),
		TradeSymbol:              domain.TradeSymbol(p.TradeSymbol),
		Fulfilled:                p.Fulfilled,
		Required:                 p.Required,
		TsStartOfReset:           derefTime(p.TsStartOfReset),
		TsFirstConstructionEvent: derefTime(p.TsFirstConstructionEvent),
		TsLastConstructionEvent:  derefTime(p.TsLastConstructionEvent),
		IsJumpGateComplete:       p.IsJumpGateComplete,
	}
}

// toDomain zips the parallel series; trailing values without a partner in
// every series are dropped.
func (p agentHistoryPayload) toDomain() domain.AgentHistory {
	n := min(len(p.EventTimes), len(p.Credits), len(p.ShipCount))
	points := make([]domain.HistoryPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, domain.HistoryPoint{
			At:        p.EventTimes[i],
			Credits:   p.Credits[i],
			ShipCount: p.ShipCount[i],
		})
	}

	return domain.AgentHistory{
		AgentSymbol: domain.AgentSymbol(p.AgentSymbol),
		Points:      points,
	}
}

func (p rankedEntryPayload) toDomain() domain.RankedEntry {
	return domain.RankedEntry{
		Reset:       domain.ResetID(p.Reset),
		AgentSymbol: domain.AgentSymbol(p.AgentSymbol),
		Credits:     p.Credits,
		Rank:        p.Rank,
	}
}

func derefTime(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}

	return value.UTC()
}
