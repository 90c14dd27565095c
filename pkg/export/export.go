// Package export produces read-only extracts of the challenge state: a
// row-per-day CSV and an equivalent formatted report. Both are pure functions
// of the state and mutate nothing.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/timeutil"
)

// CSV writes the day-by-day extract: day number, calendar date, hours, and
// completion status.
func CSV(s *challenge.State, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Day", "Date", "Hours", "Status"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, sec := range s.Days {
		date := ""
		if d, err := s.DayDate(i); err == nil {
			date = d.Format("2006-01-02")
		}
		status := "Incomplete"
		if sec >= challenge.GoalSeconds {
			status = "Completed"
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			date,
			fmt.Sprintf("%g", timeutil.ToHours(sec)),
			status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

// Report renders the formatted progress report.
func Report(s *challenge.State) string {
	var b strings.Builder
	sum := s.Summarize()

	b.WriteString("45-Day Study Challenge Report\n\n")
	fmt.Fprintf(&b, "Start Date:  %s\n", s.StartDate)
	fmt.Fprintf(&b, "Total Hours: %.2f\n\n", sum.TotalHours)

	table := uitable.New()
	table.AddRow("DAY", "DATE", "HOURS", "COMPLETED")
	for i, sec := range s.Days {
		date := ""
		if d, err := s.DayDate(i); err == nil {
			date = d.Format("2006-01-02")
		}
		completed := "No"
		if sec >= challenge.GoalSeconds {
			completed = "Yes"
		}
		table.AddRow(fmt.Sprintf("%d", i+1), date, fmt.Sprintf("%.2f", timeutil.ToHours(sec)), completed)
	}
	b.WriteString(table.String())
	b.WriteString("\n")
	return b.String()
}
