package domain

import "errors"

var (
	ErrResetNotFound     = errors.New("reset not found")
	ErrNoResets          = errors.New("no resets available")
	ErrAgentNotFound     = errors.New("agent not found")
	ErrSelectionNotFound = errors.New("selection not found")
	ErrInvalidPreset     = errors.New("invalid filter preset")
)
