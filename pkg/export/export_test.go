package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"tableflip.dev/study45/pkg/challenge"
)

func testState(t *testing.T) *challenge.State {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02", "2026-08-01", time.Local)
	if err != nil {
		t.Fatalf("bad test date: %v", err)
	}
	s := challenge.New(start)
	s.Days[0] = challenge.GoalSeconds
	s.Days[1] = 1800
	return s
}

func TestCSV(t *testing.T) {
	var buf strings.Builder
	if err := CSV(testState(t), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != challenge.Days+1 {
		t.Fatalf("expected header plus %d rows, got %d", challenge.Days, len(records))
	}
	if strings.Join(records[0], ",") != "Day,Date,Hours,Status" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][0] != "1" || records[1][1] != "2026-08-01" || records[1][2] != "8" || records[1][3] != "Completed" {
		t.Fatalf("unexpected first row %v", records[1])
	}
	if records[2][2] != "0.5" || records[2][3] != "Incomplete" {
		t.Fatalf("unexpected second row %v", records[2])
	}
}

func TestReport(t *testing.T) {
	out := Report(testState(t))
	for _, want := range []string{
		"45-Day Study Challenge Report",
		"Start Date:  2026-08-01",
		"Total Hours: 8.50",
		"2026-08-01",
		"Yes",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
