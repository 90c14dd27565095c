package challenge

import "time"

// Session is one completed run of the timer, start to pause. Entries are
// append-only and exist for audit and export, not for derived views.
//
// The day index is the one active at pause time. A run that crosses midnight
// is attributed entirely to the day it ended on; this is a documented edge
// case, not a bug.
type Session struct {
	DayIndex int       `json:"dayIndex"`
	Start    time.Time `json:"startISO"`
	End      time.Time `json:"endISO"`
	Seconds  int       `json:"seconds"`
}

// Duration returns the recorded session length.
func (s Session) Duration() time.Duration {
	return time.Duration(s.Seconds) * time.Second
}
