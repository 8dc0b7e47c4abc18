package hallway

import "errors"

var (
	// ErrInvalidAction is returned when an action id is outside the defined set
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidState is returned when a state id is outside [0, N)
	ErrInvalidState = errors.New("invalid state")
	// ErrEpisodeNotReset is returned when Step is called before the first
	// Reset, or after the episode is done without an intervening Reset
	ErrEpisodeNotReset = errors.New("episode not reset")
)
