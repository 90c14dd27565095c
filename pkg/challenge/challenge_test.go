package challenge

import (
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func TestDayIndex(t *testing.T) {
	start := day(t, "2026-08-01")
	s := New(start)

	cases := []struct {
		at    string
		index int
		ok    bool
	}{
		{"2026-08-01", 0, true},
		{"2026-08-02", 1, true},
		{"2026-09-14", 44, true},
		{"2026-09-15", 0, false},
		{"2026-07-31", 0, false},
	}
	for _, tc := range cases {
		idx, ok := s.DayIndex(day(t, tc.at))
		if ok != tc.ok || idx != tc.index {
			t.Fatalf("DayIndex(%s) = (%d, %v), want (%d, %v)", tc.at, idx, ok, tc.index, tc.ok)
		}
	}
}

func TestDayIndexNoStartDate(t *testing.T) {
	s := &State{Days: make([]int, Days)}
	if _, ok := s.DayIndex(time.Now()); ok {
		t.Fatalf("expected no index without a start date")
	}
}

func TestDayIndexMidDay(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	at := day(t, "2026-08-03").Add(23*time.Hour + 59*time.Minute)
	idx, ok := s.DayIndex(at)
	if !ok || idx != 2 {
		t.Fatalf("expected index 2, got (%d, %v)", idx, ok)
	}
}

func TestSetDaySecondsClamps(t *testing.T) {
	now := day(t, "2026-08-05")
	s := New(day(t, "2026-08-01"))

	if err := s.SetDaySeconds(3, 90000, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Days[3] != MaxDaySeconds {
		t.Fatalf("expected clamp to %d, got %d", MaxDaySeconds, s.Days[3])
	}
	if err := s.SetDaySeconds(3, -10, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Days[3] != 0 {
		t.Fatalf("expected clamp to 0, got %d", s.Days[3])
	}
	if err := s.SetDaySeconds(Days, 1, now); err == nil {
		t.Fatalf("expected out-of-range error")
	}
	if s.UpdatedAt != now.UnixMilli() {
		t.Fatalf("expected Touch on mutation")
	}
}

func TestResetAllKeepsForest(t *testing.T) {
	start := day(t, "2026-08-01")
	s := New(start)
	s.Days[0] = GoalSeconds
	s.Days[1] = GoalSeconds
	s.AppendSession(Session{DayIndex: 0, Seconds: 60}, start)
	s.Backfill(start)
	if len(s.Forest) != 2 {
		t.Fatalf("expected 2 trees before reset, got %d", len(s.Forest))
	}

	resetAt := day(t, "2026-08-10")
	s.ResetAll(resetAt)

	if s.StartDate != "2026-08-10" {
		t.Fatalf("expected start date re-anchored, got %s", s.StartDate)
	}
	if len(s.Days) != Days {
		t.Fatalf("expected %d day entries, got %d", Days, len(s.Days))
	}
	for i, sec := range s.Days {
		if sec != 0 {
			t.Fatalf("expected day %d zeroed, got %d", i, sec)
		}
	}
	if len(s.Sessions) != 0 {
		t.Fatalf("expected empty session log, got %d", len(s.Sessions))
	}
	if len(s.Forest) != 2 {
		t.Fatalf("expected forest untouched, got %d trees", len(s.Forest))
	}
}

func TestResetToday(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	s.Days[4] = 1234
	if !s.ResetToday(day(t, "2026-08-05")) {
		t.Fatalf("expected reset to apply")
	}
	if s.Days[4] != 0 {
		t.Fatalf("expected today zeroed, got %d", s.Days[4])
	}
	if s.ResetToday(day(t, "2027-01-01")) {
		t.Fatalf("expected reset outside the window to be a no-op")
	}
}

func TestSetStartDate(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	s.Days[0] = 100
	s.AppendSession(Session{DayIndex: 0, Seconds: 100}, day(t, "2026-08-01"))

	if err := s.SetStartDate("not-a-date", day(t, "2026-08-02")); err == nil {
		t.Fatalf("expected error for invalid date")
	}
	if err := s.SetStartDate("2026-09-01", day(t, "2026-08-02")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.StartDate != "2026-09-01" {
		t.Fatalf("expected new start date, got %s", s.StartDate)
	}
	if s.HasProgress() || len(s.Sessions) != 0 {
		t.Fatalf("expected progress cleared")
	}
}

func TestNormalize(t *testing.T) {
	s := &State{StartDate: "2026-08-01", Days: []int{5, -2}}
	s.Normalize()
	if len(s.Days) != Days {
		t.Fatalf("expected %d days after normalize, got %d", Days, len(s.Days))
	}
	if s.Days[0] != 5 || s.Days[1] != 0 {
		t.Fatalf("expected negative counters zeroed, got %v", s.Days[:2])
	}
	if s.Sessions == nil || s.Forest == nil {
		t.Fatalf("expected non-nil collections")
	}

	long := &State{Days: make([]int, Days+10)}
	long.Normalize()
	if len(long.Days) != Days {
		t.Fatalf("expected oversized day slice truncated, got %d", len(long.Days))
	}
}
