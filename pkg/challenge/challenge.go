// Package challenge holds the 45-day study challenge aggregate: the per-day
// accumulated seconds, the session log, the forest of planted trees, and the
// derived views computed from them.
package challenge

import (
	"fmt"
	"time"
)

const (
	// Days is the fixed length of the challenge window.
	Days = 45
	// GoalHours is the daily study goal.
	GoalHours = 8
	// GoalSeconds is the daily goal in seconds.
	GoalSeconds = GoalHours * 3600
	// MaxDaySeconds caps manual edits at a full calendar day.
	MaxDaySeconds = 24 * 3600

	layoutISO = "2006-01-02"
)

// State is the root aggregate. It is persisted as one JSON document and the
// in-memory instance is authoritative until a reconciliation proves a remote
// copy newer.
type State struct {
	StartDate        string    `json:"startDate"`
	Days             []int     `json:"days"`
	Sessions         []Session `json:"sessions"`
	Forest           []Tree    `json:"forest"`
	RemindersEnabled bool      `json:"remindersEnabled"`
	UpdatedAt        int64     `json:"updatedAt"`
}

// New returns a fresh state anchored at the given day.
func New(today time.Time) *State {
	return &State{
		StartDate: today.Format(layoutISO),
		Days:      make([]int, Days),
		Sessions:  []Session{},
		Forest:    []Tree{},
	}
}

// Normalize repairs a deserialized state so downstream code can rely on its
// shape: the day slice always has exactly Days entries and the collections
// are never nil.
func (s *State) Normalize() {
	if len(s.Days) < Days {
		padded := make([]int, Days)
		copy(padded, s.Days)
		s.Days = padded
	} else if len(s.Days) > Days {
		s.Days = s.Days[:Days]
	}
	for i, sec := range s.Days {
		if sec < 0 {
			s.Days[i] = 0
		}
	}
	if s.Sessions == nil {
		s.Sessions = []Session{}
	}
	if s.Forest == nil {
		s.Forest = []Tree{}
	}
}

// Touch records a mutation timestamp. It must run before any persistence
// call so the reconciler can order snapshots.
func (s *State) Touch(now time.Time) {
	s.UpdatedAt = now.UnixMilli()
}

// Start returns the challenge start as a local-midnight time.
func (s *State) Start() (time.Time, error) {
	if s.StartDate == "" {
		return time.Time{}, fmt.Errorf("challenge: no start date set")
	}
	t, err := time.ParseInLocation(layoutISO, s.StartDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("challenge: parse start date %q: %w", s.StartDate, err)
	}
	return t, nil
}

// DayIndex maps a wall-clock time onto a day index inside the challenge
// window. The bool is false when the challenge has not started yet, is
// already over, or has no start date.
func (s *State) DayIndex(at time.Time) (int, bool) {
	start, err := s.Start()
	if err != nil {
		return 0, false
	}
	startMidnight := midnight(start)
	atMidnight := midnight(at)
	diff := int(atMidnight.Sub(startMidnight).Hours() / 24)
	if diff < 0 || diff >= Days {
		return 0, false
	}
	return diff, true
}

// DayDate returns the calendar date of the given day index.
func (s *State) DayDate(index int) (time.Time, error) {
	start, err := s.Start()
	if err != nil {
		return time.Time{}, err
	}
	return midnight(start).AddDate(0, 0, index), nil
}

// SetDaySeconds stores an accumulated-seconds value for a day, clamped to
// [0, MaxDaySeconds].
func (s *State) SetDaySeconds(index, seconds int, now time.Time) error {
	if index < 0 || index >= Days {
		return fmt.Errorf("challenge: day index %d out of range", index)
	}
	s.Days[index] = ClampSeconds(seconds)
	s.Touch(now)
	return nil
}

// AppendSession records a completed timer run. The log is append-only and is
// never consumed by derived views.
func (s *State) AppendSession(sess Session, now time.Time) {
	s.Sessions = append(s.Sessions, sess)
	s.Touch(now)
}

// ResetToday zeroes today's counter. Returns false when no day is active.
func (s *State) ResetToday(now time.Time) bool {
	idx, ok := s.DayIndex(now)
	if !ok {
		return false
	}
	s.Days[idx] = 0
	s.Touch(now)
	return true
}

// ResetAll re-anchors the challenge at today and clears the day counters and
// the session log. The forest survives a reset.
func (s *State) ResetAll(now time.Time) {
	s.StartDate = now.Format(layoutISO)
	s.Days = make([]int, Days)
	s.Sessions = []Session{}
	s.Touch(now)
}

// SetStartDate re-anchors the challenge at the given date with the same reset
// semantics as ResetAll. Callers must confirm with the user first when
// progress exists.
func (s *State) SetStartDate(date string, now time.Time) error {
	if _, err := time.ParseInLocation(layoutISO, date, time.Local); err != nil {
		return fmt.Errorf("challenge: invalid start date %q: %w", date, err)
	}
	s.StartDate = date
	s.Days = make([]int, Days)
	s.Sessions = []Session{}
	s.Touch(now)
	return nil
}

// Clone returns a deep copy of the state, used to hand a stable snapshot to
// the asynchronous remote writer.
func (s *State) Clone() *State {
	c := *s
	c.Days = append([]int(nil), s.Days...)
	c.Sessions = append([]Session(nil), s.Sessions...)
	c.Forest = append([]Tree(nil), s.Forest...)
	return &c
}

// HasProgress reports whether any day holds accumulated time.
func (s *State) HasProgress() bool {
	for _, sec := range s.Days {
		if sec > 0 {
			return true
		}
	}
	return false
}

// ClampSeconds bounds a seconds value to [0, MaxDaySeconds].
func ClampSeconds(sec int) int {
	if sec < 0 {
		return 0
	}
	if sec > MaxDaySeconds {
		return MaxDaySeconds
	}
	return sec
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
