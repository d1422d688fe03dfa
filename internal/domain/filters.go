package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// RankedEntry is one agent's final standing in one reset.
type RankedEntry struct {
	Reset       ResetID
	AgentSymbol AgentSymbol
	Credits     int64
	Rank        int
}

// MaxRank keeps rows ranked at or above its value. Zero means all rows.
type MaxRank int

// ResetWindow keeps rows from the most recent resets. Zero means all resets.
type ResetWindow int

const (
	MaxRankAll     MaxRank     = 0
	ResetWindowAll ResetWindow = 0
)

var (
	MaxRankPresets     = []MaxRank{MaxRankAll, 1, 3, 5, 10}
	ResetWindowPresets = []ResetWindow{ResetWindowAll, 1, 3, 5, 10}
)

func (m MaxRank) String() string {
	if m == MaxRankAll {
		return "all"
	}
	return strconv.Itoa(int(m))
}

func (w ResetWindow) String() string {
	if w == ResetWindowAll {
		return "all"
	}
	return strconv.Itoa(int(w))
}

func ParseMaxRank(raw string) (MaxRank, error) {
	value, err := parsePreset(raw)
	if err != nil {
		return MaxRankAll, err
	}
	for _, preset := range MaxRankPresets {
		if int(preset) == value {
			return preset, nil
		}
	}

	return MaxRankAll, fmt.Errorf("%w: max rank %q (allowed: %s)", ErrInvalidPreset, raw, joinPresets(MaxRankPresets))
}

func ParseResetWindow(raw string) (ResetWindow, error) {
	value, err := parsePreset(raw)
	if err != nil {
		return ResetWindowAll, err
	}
	for _, preset := range ResetWindowPresets {
		if int(preset) == value {
			return preset, nil
		}
	}

	return ResetWindowAll, fmt.Errorf("%w: reset window %q (allowed: %s)", ErrInvalidPreset, raw, joinPresets(ResetWindowPresets))
}

func parsePreset(raw string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" || trimmed == "all" {
		return 0, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPreset, raw)
	}

	return value, nil
}

func joinPresets[T fmt.Stringer](presets []T) string {
	labels := make([]string, 0, len(presets))
	for _, preset := range presets {
		labels = append(labels, preset.String())
	}
	return strings.Join(labels, ", ")
}

func FilterByRank(rows []RankedEntry, maxRank MaxRank) []RankedEntry {
	if maxRank == MaxRankAll {
		return append([]RankedEntry(nil), rows...)
	}

	kept := make([]RankedEntry, 0, len(rows))
	for _, row := range rows {
		if row.Rank <= int(maxRank) {
			kept = append(kept, row)
		}
	}

	return kept
}

func FilterByResetWindow(rows []RankedEntry, window ResetWindow) []RankedEntry {
	if window == ResetWindowAll {
		return append([]RankedEntry(nil), rows...)
	}

	distinct := make([]ResetID, 0)
	seen := make(map[ResetID]struct{})
	for _, row := range rows {
		if _, ok := seen[row.Reset]; ok {
			continue
		}
		seen[row.Reset] = struct{}{}
		distinct = append(distinct, row.Reset)
	}

	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i] > distinct[j]
	})
	if len(distinct) > int(window) {
		distinct = distinct[:window]
	}

	recent := make(map[ResetID]struct{}, len(distinct))
	for _, reset := range distinct {
		recent[reset] = struct{}{}
	}

	kept := make([]RankedEntry, 0, len(rows))
	for _, row := range rows {
		if _, ok := recent[row.Reset]; ok {
			kept = append(kept, row)
		}
	}

	return kept
}

type HistoryFilter struct {
	MaxRank     MaxRank
	ResetWindow ResetWindow
}

func DefaultHistoryFilter() HistoryFilter {
	return HistoryFilter{MaxRank: 10, ResetWindow: ResetWindowAll}
}

func (f HistoryFilter) Apply(rows []RankedEntry) []RankedEntry {
	return FilterByRank(FilterByResetWindow(rows, f.ResetWindow), f.MaxRank)
}

// ParseHistoryFilter reads "max_rank" and "resets" from query values. Missing
// or malformed values fall back to DefaultHistoryFilter.
func ParseHistoryFilter(values url.Values) HistoryFilter {
	filter := DefaultHistoryFilter()

	if raw, ok := values["max_rank"]; ok && len(raw) > 0 {
		if maxRank, err := ParseMaxRank(raw[0]); err == nil {
			filter.MaxRank = maxRank
		}
	}
	if raw, ok := values["resets"]; ok && len(raw) > 0 {
		if window, err := ParseResetWindow(raw[0]); err == nil {
			filter.ResetWindow = window
		}
	}

	return filter
}
