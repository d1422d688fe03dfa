package domain

import (
	"slices"
	"sort"
)

type JumpGateSummary struct {
	NumTrackedAgents  int
	NumTrackedGates   int
	NumGatesStarted   int
	NumGatesCompleted int
}

func AggregateJumpGates(entries []ConstructionProgressEntry, assignments []JumpGateAssignment) JumpGateSummary {
	relevant := relevantEntries(entries)

	agents := make(map[AgentSymbol]struct{})
	gates := make(map[WaypointSymbol]struct{})
	for _, assignment := range assignments {
		gates[assignment.JumpGateWaypointSymbol] = struct{}{}
		for _, agent := range assignment.AgentsInSystem {
			agents[agent] = struct{}{}
		}
	}

	started := make(map[WaypointSymbol]struct{})
	complete := make(map[WaypointSymbol]bool)
	for _, entry := range relevant {
		if entry.Started() {
			started[entry.JumpGateWaypointSymbol] = struct{}{}
		}

		allComplete, seen := complete[entry.JumpGateWaypointSymbol]
		if !seen {
			allComplete = true
		}
		complete[entry.JumpGateWaypointSymbol] = allComplete && entry.IsJumpGateComplete
	}

	numCompleted := 0
	for _, done := range complete {
		if done {
			numCompleted++
		}
	}

	return JumpGateSummary{
		NumTrackedAgents:  len(agents),
		NumTrackedGates:   len(gates),
		NumGatesStarted:   len(started),
		NumGatesCompleted: numCompleted,
	}
}

func relevantEntries(entries []ConstructionProgressEntry) []ConstructionProgressEntry {
	relevant := make([]ConstructionProgressEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.RelevantForGateSummary() {
			relevant = append(relevant, entry)
		}
	}

	return relevant
}

type MaterialProgress struct {
	TradeSymbol TradeSymbol
	Fulfilled   int64
	Required    int64
}

type GateProgress struct {
	JumpGateWaypointSymbol WaypointSymbol
	AgentsInSystem         []AgentSymbol
	Materials              []MaterialProgress
	IsComplete             bool
}

// Fraction is the share of relevant material units delivered, in [0, 1].
func (g GateProgress) Fraction() float64 {
	var fulfilled, required int64
	for _, material := range g.Materials {
		fulfilled += min(material.Fulfilled, material.Required)
		required += material.Required
	}
	if required == 0 {
		return 0
	}

	return float64(fulfilled) / float64(required)
}

// GateProgressRows builds one row per gate known from either input, completed
// gates first, then by delivered fraction descending, then by symbol.
func GateProgressRows(entries []ConstructionProgressEntry, assignments []JumpGateAssignment) []GateProgress {
	rows := make(map[WaypointSymbol]*GateProgress)
	row := func(symbol WaypointSymbol) *GateProgress {
		if existing, ok := rows[symbol]; ok {
			return existing
		}
		created := &GateProgress{JumpGateWaypointSymbol: symbol, IsComplete: true}
		rows[symbol] = created
		return created
	}

	for _, assignment := range assignments {
		r := row(assignment.JumpGateWaypointSymbol)
		for _, agent := range assignment.AgentsInSystem {
			if !slices.Contains(r.AgentsInSystem, agent) {
				r.AgentsInSystem = append(r.AgentsInSystem, agent)
			}
		}
	}

	for _, entry := range relevantEntries(entries) {
		r := row(entry.JumpGateWaypointSymbol)
		r.Materials = append(r.Materials, MaterialProgress{
			TradeSymbol: entry.TradeSymbol,
			Fulfilled:   entry.Fulfilled,
			Required:    entry.Required,
		})
		r.IsComplete = r.IsComplete && entry.IsJumpGateComplete
	}

	result := make([]GateProgress, 0, len(rows))
	for _, r := range rows {
		if len(r.Materials) == 0 {
			r.IsComplete = false
		}
		sort.SliceStable(r.Materials, func(i, j int) bool {
			return r.Materials[i].TradeSymbol < r.Materials[j].TradeSymbol
		})
		result = append(result, *r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsComplete != result[j].IsComplete {
			return result[i].IsComplete
		}
		fi, fj := result[i].Fraction(), result[j].Fraction()
		if fi != fj {
			return fi > fj
		}
		return result[i].JumpGateWaypointSymbol < result[j].JumpGateWaypointSymbol
	})

	return result
}
