// Package timer converts wall-clock deltas into day-record updates. Elapsed
// time is always recomputed from absolute timestamps, never from tick counts,
// so the accumulator survives suspension and throttling.
package timer

import (
	"errors"
	"math"
	"time"

	"tableflip.dev/study45/pkg/challenge"
)

// ErrNoActiveDay is returned when the timer is started outside the challenge
// window.
var ErrNoActiveDay = errors.New("timer: no active challenge day")

// Clock is the only source of real time the accumulator consults.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Tick is the outcome of one periodic evaluation.
type Tick struct {
	// Applied is true when the candidate total advanced the day record.
	Applied bool
	// Day is the day index the evaluation wrote to, -1 when none is active.
	Day int
	// Seconds is the displayed total after the evaluation.
	Seconds int
	// GoalReached fires on the evaluation where the total lands exactly on
	// the daily goal.
	GoalReached bool
	// HourMark is the whole hour count when the total lands exactly on an
	// hour multiple, zero otherwise.
	HourMark int
	// MinuteBoundary is true when the total is a whole-minute multiple, the
	// cadence for durable local writes while running.
	MinuteBoundary bool
}

// Accumulator drives the running/stopped timer state over a ChallengeState.
// It is not safe for concurrent use; all evaluation happens on one control
// thread.
type Accumulator struct {
	clock Clock
	state *challenge.State

	running       bool
	anchorWall    time.Time
	anchorSeconds int
	sessionStart  time.Time
	seconds       int
}

// New returns a stopped accumulator over the given state. The displayed
// seconds are seeded from today's record when a day is active.
func New(state *challenge.State, clock Clock) *Accumulator {
	if clock == nil {
		clock = SystemClock()
	}
	a := &Accumulator{clock: clock, state: state}
	if idx, ok := state.DayIndex(clock.Now()); ok {
		a.seconds = state.Days[idx]
	}
	return a
}

// Running reports whether the timer is accumulating.
func (a *Accumulator) Running() bool { return a.running }

// Seconds returns the displayed total for today.
func (a *Accumulator) Seconds() int { return a.seconds }

// Start transitions Stopped -> Running. It fails with ErrNoActiveDay when the
// challenge window does not cover today; no state is mutated in that case.
func (a *Accumulator) Start() error {
	if a.running {
		return nil
	}
	now := a.clock.Now()
	idx, ok := a.state.DayIndex(now)
	if !ok {
		return ErrNoActiveDay
	}
	a.running = true
	a.seconds = a.state.Days[idx]
	a.anchorWall = now
	a.anchorSeconds = a.seconds
	a.sessionStart = now
	return nil
}

// Evaluate recomputes the candidate total from the anchor and applies it to
// today's record only when it strictly exceeds the current display value.
// Clock regressions and duplicate wakeups therefore never move the record
// backwards.
func (a *Accumulator) Evaluate() Tick {
	tick := Tick{Day: -1, Seconds: a.seconds}
	if !a.running {
		return tick
	}

	now := a.clock.Now()
	elapsed := int(math.Floor(now.Sub(a.anchorWall).Seconds()))
	candidate := a.anchorSeconds + elapsed
	if candidate <= a.seconds {
		return tick
	}

	a.seconds = candidate
	tick.Applied = true
	tick.Seconds = candidate

	if idx, ok := a.state.DayIndex(now); ok {
		tick.Day = idx
		if err := a.state.SetDaySeconds(idx, candidate, now); err == nil {
			tick.MinuteBoundary = candidate%60 == 0
		}
	}

	if candidate == challenge.GoalSeconds {
		tick.GoalReached = true
	}
	if candidate > 0 && candidate%3600 == 0 {
		tick.HourMark = candidate / 3600
	}
	return tick
}

// Pause transitions Running -> Stopped and records the closed session. The
// session's day index is the one active at pause time, so a run spanning
// midnight is attributed to the day it ended on. The bool is false when no
// session was recorded (not running, zero duration, or no active day).
func (a *Accumulator) Pause() (challenge.Session, bool) {
	if !a.running {
		return challenge.Session{}, false
	}
	a.running = false

	now := a.clock.Now()
	duration := int(math.Round(now.Sub(a.sessionStart).Seconds()))
	idx, ok := a.state.DayIndex(now)
	start := a.sessionStart
	a.sessionStart = time.Time{}

	if duration <= 0 || !ok {
		return challenge.Session{}, false
	}
	sess := challenge.Session{
		DayIndex: idx,
		Start:    start,
		End:      now,
		Seconds:  duration,
	}
	a.state.AppendSession(sess, now)
	return sess, true
}

// Repin re-anchors a running timer after a manual edit of today's value so
// the next evaluation does not overwrite the edit with stale accumulation.
func (a *Accumulator) Repin(seconds int) {
	a.seconds = seconds
	if !a.running {
		return
	}
	a.anchorWall = a.clock.Now()
	a.anchorSeconds = seconds
}
