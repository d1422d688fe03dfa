package domain

import (
	"sort"
	"time"
)

type MaterialSummary struct {
	TradeSymbol            TradeSymbol
	NumStartedDeliveries   int
	NumCompletedDeliveries int
	FastestFirstDelivery   *time.Duration
	FastestLastDelivery    *time.Duration
	FastestConstruction    *time.Duration
}

// AggregateMaterials summarizes deliveries per material, ordered by trade
// symbol. Materials without any defined reset start are omitted, as is
// BaselineMaterial.
func AggregateMaterials(entries []ConstructionProgressEntry) []MaterialSummary {
	order := make([]TradeSymbol, 0)
	grouped := make(map[TradeSymbol][]ConstructionProgressEntry)
	for _, entry := range entries {
		if entry.TradeSymbol == BaselineMaterial {
			continue
		}
		if _, ok := grouped[entry.TradeSymbol]; !ok {
			order = append(order, entry.TradeSymbol)
		}
		grouped[entry.TradeSymbol] = append(grouped[entry.TradeSymbol], entry)
	}

	summaries := make([]MaterialSummary, 0, len(order))
	for _, symbol := range order {
		summary, ok := summarizeMaterial(symbol, grouped[symbol])
		if !ok {
			continue
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TradeSymbol < summaries[j].TradeSymbol
	})

	return summaries
}

func summarizeMaterial(symbol TradeSymbol, entries []ConstructionProgressEntry) (MaterialSummary, bool) {
	hasStart := false
	for _, entry := range entries {
		if !entry.TsStartOfReset.IsZero() {
			hasStart = true
			break
		}
	}
	if !hasStart {
		return MaterialSummary{}, false
	}

	summary := MaterialSummary{TradeSymbol: symbol}
	var fastestCompleted *ConstructionProgressEntry

	for i := range entries {
		entry := entries[i]
		if entry.Started() {
			summary.NumStartedDeliveries++
			if elapsed, ok := entry.firstDeliveryElapsed(); ok {
				if summary.FastestFirstDelivery == nil || elapsed < *summary.FastestFirstDelivery {
					summary.FastestFirstDelivery = durationPtr(elapsed)
				}
			}
		}

		if entry.Completed() {
			summary.NumCompletedDeliveries++
			if elapsed, ok := entry.lastDeliveryElapsed(); ok {
				if summary.FastestLastDelivery == nil || elapsed < *summary.FastestLastDelivery {
					summary.FastestLastDelivery = durationPtr(elapsed)
					fastestCompleted = &entries[i]
				}
			}
		}
	}

	if fastestCompleted != nil && !fastestCompleted.TsFirstConstructionEvent.IsZero() {
		summary.FastestConstruction = durationPtr(fastestCompleted.TsLastConstructionEvent.Sub(fastestCompleted.TsFirstConstructionEvent))
	}

	return summary, true
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
