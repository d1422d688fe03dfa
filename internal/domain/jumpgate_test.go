package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jumpGateFixture() ([]ConstructionProgressEntry, []JumpGateAssignment) {
	entries := []ConstructionProgressEntry{
		{JumpGateWaypointSymbol: "GATE-A", TradeSymbol: "FAB_MATS", Fulfilled: 1600, Required: 1600, IsJumpGateComplete: true},
		{JumpGateWaypointSymbol: "GATE-A", TradeSymbol: "ADVANCED_CIRCUITRY", Fulfilled: 400, Required: 400, IsJumpGateComplete: true},
		{JumpGateWaypointSymbol: "GATE-A", TradeSymbol: BaselineMaterial, Fulfilled: 1, Required: 1, IsJumpGateComplete: true},
		{JumpGateWaypointSymbol: "GATE-B", TradeSymbol: "FAB_MATS", Fulfilled: 800, Required: 1600},
		{JumpGateWaypointSymbol: "GATE-B", TradeSymbol: "ADVANCED_CIRCUITRY", Fulfilled: 0, Required: 400},
		{JumpGateWaypointSymbol: "GATE-C", TradeSymbol: "FAB_MATS", Fulfilled: 0, Required: 1600},
		{JumpGateWaypointSymbol: "GATE-C", TradeSymbol: BaselineMaterial, Fulfilled: 1, Required: 1},
	}
	assignments := []JumpGateAssignment{
		{JumpGateWaypointSymbol: "GATE-A", AgentsInSystem: []AgentSymbol{"ALPHA", "BETA"}},
		{JumpGateWaypointSymbol: "GATE-B", AgentsInSystem: []AgentSymbol{"BETA", "GAMMA"}},
		{JumpGateWaypointSymbol: "GATE-C", AgentsInSystem: []AgentSymbol{"DELTA"}},
		{JumpGateWaypointSymbol: "GATE-C", AgentsInSystem: []AgentSymbol{"DELTA"}},
	}

	return entries, assignments
}

func TestAggregateJumpGates(t *testing.T) {
	entries, assignments := jumpGateFixture()

	got := AggregateJumpGates(entries, assignments)

	assert.Equal(t, JumpGateSummary{
		NumTrackedAgents:  4,
		NumTrackedGates:   3,
		NumGatesStarted:   2,
		NumGatesCompleted: 1,
	}, got)
}

func TestAggregateJumpGatesIgnoresBaselineDeliveries(t *testing.T) {
	got := AggregateJumpGates([]ConstructionProgressEntry{
		{JumpGateWaypointSymbol: "GATE-A", TradeSymbol: BaselineMaterial, Fulfilled: 1, Required: 1, IsJumpGateComplete: true},
	}, nil)

	assert.Equal(t, 0, got.NumGatesStarted)
	assert.Equal(t, 0, got.NumGatesCompleted)
}

func TestAggregateJumpGatesRequiresEveryMaterialComplete(t *testing.T) {
	got := AggregateJumpGates([]ConstructionProgressEntry{
		{JumpGateWaypointSymbol: "GATE-A", TradeSymbol: "FAB_MATS", Fulfilled: 1600, Required: 1600, IsJumpGateComplete: true},
		{JumpGateWaypointSymbol: "GATE-A", TradeSymbol: "ADVANCED_CIRCUITRY", Fulfilled: 300, Required: 400, IsJumpGateComplete: false},
	}, nil)

	assert.Equal(t, 1, got.NumGatesStarted)
	assert.Equal(t, 0, got.NumGatesCompleted)
}

func TestAggregateJumpGatesEmptyInput(t *testing.T) {
	assert.Equal(t, JumpGateSummary{}, AggregateJumpGates(nil, nil))
}

func TestGateProgressRows(t *testing.T) {
	entries, assignments := jumpGateFixture()

	rows := GateProgressRows(entries, assignments)

	require.Len(t, rows, 3)
	assert.Equal(t, WaypointSymbol("GATE-A"), rows[0].JumpGateWaypointSymbol)
	assert.True(t, rows[0].IsComplete)
	assert.InDelta(t, 1.0, rows[0].Fraction(), 1e-9)
	assert.Len(t, rows[0].Materials, 2)

	assert.Equal(t, WaypointSymbol("GATE-B"), rows[1].JumpGateWaypointSymbol)
	assert.False(t, rows[1].IsComplete)
	assert.InDelta(t, 0.4, rows[1].Fraction(), 1e-9)
	assert.Equal(t, []AgentSymbol{"BETA", "GAMMA"}, rows[1].AgentsInSystem)

	assert.Equal(t, WaypointSymbol("GATE-C"), rows[2].JumpGateWaypointSymbol)
	assert.Equal(t, []AgentSymbol{"DELTA"}, rows[2].AgentsInSystem)
}

func TestGateProgressRowsMergesRepeatedGateAssignments(t *testing.T) {
	assignments := []JumpGateAssignment{
		{JumpGateWaypointSymbol: "G1", AgentsInSystem: []AgentSymbol{"A", "B"}},
		{JumpGateWaypointSymbol: "G1", AgentsInSystem: []AgentSymbol{"A"}},
	}

	rows := GateProgressRows(nil, assignments)

	require.Len(t, rows, 1)
	assert.Equal(t, []AgentSymbol{"A", "B"}, rows[0].AgentsInSystem)
	assert.Equal(t, 2, AggregateJumpGates(nil, assignments).NumTrackedAgents)
}

func TestGateProgressRowsGateWithoutMaterialsIsNotComplete(t *testing.T) {
	rows := GateProgressRows(nil, []JumpGateAssignment{{JumpGateWaypointSymbol: "GATE-Z", AgentsInSystem: []AgentSymbol{"ALPHA"}}})

	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsComplete)
	assert.Zero(t, rows[0].Fraction())
}
