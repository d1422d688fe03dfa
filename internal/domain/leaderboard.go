package domain

import (
	"fmt"
	"sort"
	"strings"
)

// MaxLeaderboardEntries bounds every sorted leaderboard slice.
const MaxLeaderboardEntries = 30

type AgentSymbol string

type LeaderboardEntry struct {
	Reset       ResetID
	AgentSymbol AgentSymbol
	Credits     int64
	ShipCount   int64
}

type LeaderboardField string

const (
	LeaderboardFieldCredits LeaderboardField = "credits"
	LeaderboardFieldShips   LeaderboardField = "ships"
)

func ParseLeaderboardField(raw string) (LeaderboardField, error) {
	switch field := LeaderboardField(strings.ToLower(strings.TrimSpace(raw))); field {
	case "", LeaderboardFieldCredits:
		return LeaderboardFieldCredits, nil
	case LeaderboardFieldShips:
		return LeaderboardFieldShips, nil
	default:
		return "", fmt.Errorf("unsupported leaderboard field %q", raw)
	}
}

func (f LeaderboardField) Value(entry LeaderboardEntry) int64 {
	if f == LeaderboardFieldShips {
		return entry.ShipCount
	}

	return entry.Credits
}

func (f LeaderboardField) Label() string {
	if f == LeaderboardFieldShips {
		return "Ships"
	}

	return "Credits"
}

// Color is a hex color such as "#4e79a7".
type Color string

var DefaultPalette = []Color{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ac",
}

// ColorAt returns palette[index mod len(palette)].
func ColorAt(palette []Color, index int) Color {
	if len(palette) == 0 || index < 0 {
		return ""
	}

	return palette[index%len(palette)]
}

type Colored[T any] struct {
	Entry T
	Color Color
}

// SortAndColor stable-sorts entries by value descending, keeps at most
// MaxLeaderboardEntries and pairs each kept entry with its palette color.
func SortAndColor[T any](entries []T, value func(T) int64, palette []Color) []Colored[T] {
	sorted := make([]T, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})

	if len(sorted) > MaxLeaderboardEntries {
		sorted = sorted[:MaxLeaderboardEntries]
	}

	colored := make([]Colored[T], 0, len(sorted))
	for i, entry := range sorted {
		colored = append(colored, Colored[T]{Entry: entry, Color: ColorAt(palette, i)})
	}

	return colored
}

func LeaderboardFor(entries []LeaderboardEntry, field LeaderboardField, palette []Color) []Colored[LeaderboardEntry] {
	return SortAndColor(entries, field.Value, palette)
}
