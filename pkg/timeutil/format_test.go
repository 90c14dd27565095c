package timeutil

import "testing"

func TestFormatTime(t *testing.T) {
	cases := []struct {
		sec  int
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3600, "01:00:00"},
		{28800, "08:00:00"},
		{86399, "23:59:59"},
		{90000, "25:00:00"},
		{-5, "00:00:00"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.sec); got != tc.want {
			t.Fatalf("FormatTime(%d) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}

func TestToHours(t *testing.T) {
	cases := []struct {
		sec  int
		want float64
	}{
		{0, 0},
		{3600, 1},
		{5400, 1.5},
		{28800, 8},
		{1000, 0.28},
	}
	for _, tc := range cases {
		if got := ToHours(tc.sec); got != tc.want {
			t.Fatalf("ToHours(%d) = %v, want %v", tc.sec, got, tc.want)
		}
	}
}

func TestParseHours(t *testing.T) {
	if _, err := ParseHours("eight"); err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
	if _, err := ParseHours(""); err == nil {
		t.Fatalf("expected error for empty input")
	}

	h, err := ParseHours(" 7.25 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 7.25 {
		t.Fatalf("expected 7.25, got %v", h)
	}

	h, err = ParseHours("99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 24 {
		t.Fatalf("expected clamp to 24, got %v", h)
	}

	h, err = ParseHours("-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 0 {
		t.Fatalf("expected clamp to 0, got %v", h)
	}
}

func TestHoursToSeconds(t *testing.T) {
	if got := HoursToSeconds(8); got != 28800 {
		t.Fatalf("expected 28800, got %d", got)
	}
	if got := HoursToSeconds(0.5); got != 1800 {
		t.Fatalf("expected 1800, got %d", got)
	}
}
