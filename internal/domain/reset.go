package domain

import (
	"sort"
	"time"
)

// ResetID is the date string identifying a reset, e.g. "2024-03-10".
// Lexicographic order of reset IDs matches chronological order.
type ResetID string

type Reset struct {
	ID        ResetID
	FirstTs   time.Time
	LastTs    time.Time
	IsOngoing bool
}

func (r Reset) Duration() time.Duration {
	if r.FirstTs.IsZero() || r.LastTs.IsZero() || r.LastTs.Before(r.FirstTs) {
		return 0
	}

	return r.LastTs.Sub(r.FirstTs)
}

// SortResetsDesc returns a copy of resets ordered newest first.
func SortResetsDesc(resets []Reset) []Reset {
	sorted := make([]Reset, len(resets))
	copy(sorted, resets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})

	return sorted
}

func LatestReset(resets []Reset) (Reset, error) {
	if len(resets) == 0 {
		return Reset{}, ErrNoResets
	}

	return SortResetsDesc(resets)[0], nil
}

func FindReset(resets []Reset, id ResetID) (Reset, error) {
	for _, reset := range resets {
		if reset.ID == id {
			return reset, nil
		}
	}

	return Reset{}, ErrResetNotFound
}
