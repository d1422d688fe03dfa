package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAndColorOrdersByCreditsDescending(t *testing.T) {
	entries := []LeaderboardEntry{
		{AgentSymbol: "A", Credits: 10},
		{AgentSymbol: "B", Credits: 50},
	}

	got := LeaderboardFor(entries, LeaderboardFieldCredits, DefaultPalette)

	require.Len(t, got, 2)
	assert.Equal(t, AgentSymbol("B"), got[0].Entry.AgentSymbol)
	assert.Equal(t, DefaultPalette[0], got[0].Color)
	assert.Equal(t, AgentSymbol("A"), got[1].Entry.AgentSymbol)
	assert.Equal(t, DefaultPalette[1], got[1].Color)
}

func TestSortAndColorBoundsOutputLength(t *testing.T) {
	for _, n := range []int{0, 1, 29, 30, 31, 75} {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			entries := make([]LeaderboardEntry, 0, n)
			for i := 0; i < n; i++ {
				entries = append(entries, LeaderboardEntry{AgentSymbol: AgentSymbol(fmt.Sprintf("AGENT-%d", i)), Credits: int64(i)})
			}

			got := LeaderboardFor(entries, LeaderboardFieldCredits, DefaultPalette)

			assert.NotNil(t, got)
			assert.Len(t, got, min(MaxLeaderboardEntries, n))
		})
	}
}

func TestSortAndColorCyclesPalette(t *testing.T) {
	palette := []Color{"#111111", "#222222", "#333333"}
	entries := make([]LeaderboardEntry, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, LeaderboardEntry{AgentSymbol: AgentSymbol(fmt.Sprintf("AGENT-%d", i)), Credits: int64(100 - i)})
	}

	got := LeaderboardFor(entries, LeaderboardFieldCredits, palette)

	for i := 0; i+len(palette) < len(got); i++ {
		assert.Equal(t, got[i].Color, got[i+len(palette)].Color, "index %d", i)
	}
	assert.Equal(t, Color("#222222"), got[4].Color)
}

func TestSortAndColorKeepsInputOrderOnTies(t *testing.T) {
	entries := []LeaderboardEntry{
		{AgentSymbol: "FIRST", Credits: 5},
		{AgentSymbol: "SECOND", Credits: 5},
		{AgentSymbol: "TOP", Credits: 9},
		{AgentSymbol: "THIRD", Credits: 5},
	}

	got := LeaderboardFor(entries, LeaderboardFieldCredits, DefaultPalette)

	symbols := make([]AgentSymbol, 0, len(got))
	for _, colored := range got {
		symbols = append(symbols, colored.Entry.AgentSymbol)
	}
	assert.Equal(t, []AgentSymbol{"TOP", "FIRST", "SECOND", "THIRD"}, symbols)
	assert.Equal(t, AgentSymbol("FIRST"), entries[0].AgentSymbol, "input must not be reordered")
}

func TestSortAndColorByShipCount(t *testing.T) {
	entries := []LeaderboardEntry{
		{AgentSymbol: "RICH", Credits: 1_000_000, ShipCount: 2},
		{AgentSymbol: "FLEET", Credits: 10, ShipCount: 40},
	}

	got := LeaderboardFor(entries, LeaderboardFieldShips, DefaultPalette)

	require.Len(t, got, 2)
	assert.Equal(t, AgentSymbol("FLEET"), got[0].Entry.AgentSymbol)
}

func TestColorAt(t *testing.T) {
	palette := []Color{"#a", "#b"}

	assert.Equal(t, Color("#a"), ColorAt(palette, 0))
	assert.Equal(t, Color("#b"), ColorAt(palette, 3))
	assert.Equal(t, Color(""), ColorAt(nil, 3))
	assert.Equal(t, Color(""), ColorAt(palette, -1))
}

func TestParseLeaderboardField(t *testing.T) {
	tests := []struct {
		raw     string
		want    LeaderboardField
		wantErr bool
	}{
		{raw: "", want: LeaderboardFieldCredits},
		{raw: "credits", want: LeaderboardFieldCredits},
		{raw: " Ships ", want: LeaderboardFieldShips},
		{raw: "charts", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLeaderboardField(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
