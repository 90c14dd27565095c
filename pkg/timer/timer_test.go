package timer

import (
	"testing"
	"time"

	"tableflip.dev/study45/pkg/challenge"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func newFixture(t *testing.T) (*challenge.State, *fakeClock) {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02", "2026-08-01", time.Local)
	if err != nil {
		t.Fatalf("bad test date: %v", err)
	}
	clock := &fakeClock{now: start.Add(9 * time.Hour)} // 09:00 on day 0
	return challenge.New(start), clock
}

func TestStartOutsideWindow(t *testing.T) {
	state, clock := newFixture(t)
	clock.now = clock.now.AddDate(0, 0, challenge.Days) // past the window

	a := New(state, clock)
	if err := a.Start(); err != ErrNoActiveDay {
		t.Fatalf("expected ErrNoActiveDay, got %v", err)
	}
	if state.UpdatedAt != 0 {
		t.Fatalf("expected no mutation on failed start")
	}
}

func TestAccumulationMonotonic(t *testing.T) {
	state, clock := newFixture(t)
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(10 * time.Second)
	tick := a.Evaluate()
	if !tick.Applied || tick.Seconds != 10 {
		t.Fatalf("expected 10 seconds applied, got %+v", tick)
	}
	if state.Days[0] != 10 {
		t.Fatalf("expected day record at 10, got %d", state.Days[0])
	}

	// Duplicate wakeup with no time advance is a no-op.
	tick = a.Evaluate()
	if tick.Applied {
		t.Fatalf("expected duplicate evaluation to be a no-op")
	}

	// A clock regression must never decrease the record.
	clock.advance(-time.Minute)
	tick = a.Evaluate()
	if tick.Applied || state.Days[0] != 10 {
		t.Fatalf("expected regression no-op, got %+v (days[0]=%d)", tick, state.Days[0])
	}

	// Once the clock catches back up, accumulation resumes.
	clock.advance(2 * time.Minute)
	tick = a.Evaluate()
	if !tick.Applied || tick.Seconds != 70 {
		t.Fatalf("expected 70 seconds after recovery, got %+v", tick)
	}
}

func TestSuspensionRecoversFullElapsed(t *testing.T) {
	state, clock := newFixture(t)
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No ticks fire for an hour (device asleep); one wakeup recovers it all.
	clock.advance(time.Hour)
	tick := a.Evaluate()
	if tick.Seconds != 3600 {
		t.Fatalf("expected 3600 seconds after suspension, got %d", tick.Seconds)
	}
	if tick.HourMark != 1 {
		t.Fatalf("expected hour mark 1, got %d", tick.HourMark)
	}
	if !tick.MinuteBoundary {
		t.Fatalf("expected minute boundary at 3600")
	}
}

func TestGoalReached(t *testing.T) {
	state, clock := newFixture(t)
	state.Days[0] = challenge.GoalSeconds - 1
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(time.Second)
	tick := a.Evaluate()
	if !tick.GoalReached {
		t.Fatalf("expected goal event at exactly %d seconds, got %+v", challenge.GoalSeconds, tick)
	}
	if tick.HourMark != challenge.GoalHours {
		t.Fatalf("expected hour mark %d, got %d", challenge.GoalHours, tick.HourMark)
	}

	clock.advance(time.Second)
	tick = a.Evaluate()
	if tick.GoalReached {
		t.Fatalf("goal event must fire once, got %+v", tick)
	}
}

func TestPauseRecordsSession(t *testing.T) {
	state, clock := newFixture(t)
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessionStart := clock.now

	clock.advance(90 * time.Second)
	a.Evaluate()
	sess, ok := a.Pause()
	if !ok {
		t.Fatalf("expected a session record")
	}
	if sess.Seconds != 90 || sess.DayIndex != 0 {
		t.Fatalf("unexpected session %+v", sess)
	}
	if !sess.Start.Equal(sessionStart) {
		t.Fatalf("expected session start %v, got %v", sessionStart, sess.Start)
	}
	if len(state.Sessions) != 1 {
		t.Fatalf("expected one session in the log, got %d", len(state.Sessions))
	}

	if _, ok := a.Pause(); ok {
		t.Fatalf("expected pause while stopped to be a no-op")
	}
}

func TestPauseAttributesSessionToPauseDay(t *testing.T) {
	state, clock := newFixture(t)
	clock.now = clock.now.Add(14*time.Hour + 30*time.Minute) // 23:30 on day 0
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(time.Hour) // crosses midnight into day 1
	a.Evaluate()
	sess, ok := a.Pause()
	if !ok {
		t.Fatalf("expected a session record")
	}
	if sess.DayIndex != 1 {
		t.Fatalf("expected attribution to the pause-time day 1, got %d", sess.DayIndex)
	}
	if sess.Seconds != 3600 {
		t.Fatalf("expected 3600 second session, got %d", sess.Seconds)
	}
}

func TestRepinAfterManualEdit(t *testing.T) {
	state, clock := newFixture(t)
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(100 * time.Second)
	a.Evaluate()

	// Manual edit sets today to two hours and re-pins the anchor.
	edited := 2 * 3600
	if err := state.SetDaySeconds(0, edited, clock.now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Repin(edited)

	clock.advance(5 * time.Second)
	tick := a.Evaluate()
	if tick.Seconds != edited+5 {
		t.Fatalf("expected %d after repin, got %d", edited+5, tick.Seconds)
	}
	if state.Days[0] != edited+5 {
		t.Fatalf("expected record %d, got %d", edited+5, state.Days[0])
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	state, clock := newFixture(t)
	a := New(state, clock)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	anchorBefore := clock.now
	clock.advance(30 * time.Second)
	if err := a.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tick := a.Evaluate()
	if tick.Seconds != 30 {
		t.Fatalf("expected anchor kept from %v, got %+v", anchorBefore, tick)
	}
}
