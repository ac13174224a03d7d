package domain

import "time"

// State is the per-session record threaded through every page handler.
type State struct {
	Username     string `json:"username"`
	StartingTime string `json:"starting_time"`
	EndingTime   string `json:"ending_time"`
	Notes        string `json:"notes"`

	// TimerEnd backs the live countdown; zero when no timer is running.
	TimerEnd time.Time `json:"-"`
}

// NewState returns a State with every field empty.
func NewState() State {
	return State{}
}
