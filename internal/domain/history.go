package domain

import "time"

type HistoryPoint struct {
	At        time.Time
	Credits   int64
	ShipCount int64
}

type AgentHistory struct {
	AgentSymbol AgentSymbol
	Points      []HistoryPoint
}

func (h AgentHistory) Latest() (HistoryPoint, bool) {
	var latest HistoryPoint
	found := false
	for _, point := range h.Points {
		if !found || point.At.After(latest.At) {
			latest = point
			found = true
		}
	}

	return latest, found
}

func (h AgentHistory) PeakCredits() int64 {
	var peak int64
	for _, point := range h.Points {
		peak = max(peak, point.Credits)
	}

	return peak
}

func (h AgentHistory) LatestCredits() int64 {
	latest, _ := h.Latest()
	return latest.Credits
}
