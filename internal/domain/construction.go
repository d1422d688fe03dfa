package domain

import "time"

type WaypointSymbol string

type TradeSymbol string

// BaselineMaterial is required by every jump gate in a quantity of one and
// never tells gates apart, so summaries leave it out.
const BaselineMaterial TradeSymbol = "QUANTUM_STABILIZERS"

// BaselineRequiredThreshold is the required quantity of the baseline
// material. Entries at or below it are ignored by gate summaries.
const BaselineRequiredThreshold int64 = 1

// ConstructionProgressEntry is the delivery progress of one material toward
// one jump gate within a reset. Zero timestamps are undefined.
type ConstructionProgressEntry struct {
	JumpGateWaypointSymbol   WaypointSymbol
	TradeSymbol              TradeSymbol
	Fulfilled                int64
	Required                 int64
	TsStartOfReset           time.Time
	TsFirstConstructionEvent time.Time
	TsLastConstructionEvent  time.Time
	IsJumpGateComplete       bool
}

func (e ConstructionProgressEntry) Started() bool {
	return e.Fulfilled > 0
}

func (e ConstructionProgressEntry) Completed() bool {
	return e.Required > 0 && e.Fulfilled == e.Required
}

func (e ConstructionProgressEntry) WellFormed() bool {
	if e.Fulfilled < 0 || e.Fulfilled > e.Required {
		return false
	}

	return e.TsLastConstructionEvent.IsZero() || e.Completed()
}

// RelevantForGateSummary reports whether the entry carries a material that
// distinguishes gates from each other.
func (e ConstructionProgressEntry) RelevantForGateSummary() bool {
	return e.Required > BaselineRequiredThreshold
}

func (e ConstructionProgressEntry) firstDeliveryElapsed() (time.Duration, bool) {
	if e.TsStartOfReset.IsZero() || e.TsFirstConstructionEvent.IsZero() {
		return 0, false
	}

	return e.TsFirstConstructionEvent.Sub(e.TsStartOfReset), true
}

func (e ConstructionProgressEntry) lastDeliveryElapsed() (time.Duration, bool) {
	if e.TsStartOfReset.IsZero() || e.TsLastConstructionEvent.IsZero() {
		return 0, false
	}

	return e.TsLastConstructionEvent.Sub(e.TsStartOfReset), true
}

type JumpGateAssignment struct {
	JumpGateWaypointSymbol WaypointSymbol
	AgentsInSystem         []AgentSymbol
}
