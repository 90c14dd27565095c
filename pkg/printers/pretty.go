// Package printers renders challenge state for the terminal.
package printers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/glyph"
	"tableflip.dev/study45/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Summary prints the completion panel.
func (pp *PrettyPrint) Summary(sum challenge.Summary, streaks challenge.Streaks) {
	table := uitable.New()
	table.AddRow("Total:", fmt.Sprintf("%.2f hrs", sum.TotalHours))
	table.AddRow("Completed:", fmt.Sprintf("%d / %d days", sum.Completed, challenge.Days))
	table.AddRow("Current streak:", fmt.Sprintf("%d", streaks.Current))
	table.AddRow("Longest streak:", fmt.Sprintf("%d", streaks.Longest))
	table.AddRow("Average / day:", fmt.Sprintf("%.2f hrs", sum.AverageHours))
	if sum.BestSeconds > 0 {
		table.AddRow("Best day:", fmt.Sprintf("Day %d — %.2f hrs", sum.BestDay+1, timeutil.ToHours(sum.BestSeconds)))
	} else {
		table.AddRow("Best day:", "-")
	}
	table.AddRow("Progress:", fmt.Sprintf("%d%%", sum.Percent))
	fmt.Println(table)
}

// Today prints today's accumulated time, the goal progress bar, and the
// growing tree.
func (pp *PrettyPrint) Today(dateLabel string, seconds int) {
	b := color.New(color.Bold)
	_, _ = b.Println(dateLabel)
	fmt.Printf("%s  (%.2f hrs)\n", timeutil.FormatTime(seconds), timeutil.ToHours(seconds))
	fmt.Println(progressBar(seconds, challenge.GoalSeconds, 30))

	stage := challenge.TreeStage(seconds)
	for _, row := range glyph.Tree(stage) {
		fmt.Println("  " + row)
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("%s (stage %d of %d)\n", glyph.StageName(stage), stage, challenge.MaxTreeStage)
}

// TodayInactive prints the out-of-window message.
func (pp *PrettyPrint) TodayInactive() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println("Challenge not started or ended.")
}

// DayGrid prints the row-per-day view of the whole window.
func (pp *PrettyPrint) DayGrid(s *challenge.State) {
	done := color.New(color.FgGreen, color.Bold)

	table := uitable.New()
	table.AddRow("DAY", "DATE", "HOURS", "STATUS")
	for i, sec := range s.Days {
		date := "-"
		if d, err := s.DayDate(i); err == nil {
			date = d.Format("2006-01-02")
		}
		status := ""
		if sec >= challenge.GoalSeconds {
			status = done.Sprint("COMPLETED")
		}
		table.AddRow(fmt.Sprintf("%d", i+1), date, fmt.Sprintf("%.2f", timeutil.ToHours(sec)), status)
	}
	fmt.Println(table)
}

// Forest prints the tree gallery.
func (pp *PrettyPrint) Forest(s *challenge.State) {
	if len(s.Forest) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no trees yet — complete a day to plant one")
		return
	}

	table := uitable.New()
	if pp.ShowID {
		table.AddRow("", "DAY", "DATE", "TYPE", "ID")
	} else {
		table.AddRow("", "DAY", "DATE", "TYPE")
	}
	for _, tree := range s.Forest {
		badge := typeColor(tree.Type).Sprint(glyph.TypeBadge(string(tree.Type)))
		if pp.ShowID {
			table.AddRow(badge, fmt.Sprintf("%d", tree.DayIndex+1), tree.Date, string(tree.Type), tree.ID)
		} else {
			table.AddRow(badge, fmt.Sprintf("%d", tree.DayIndex+1), tree.Date, string(tree.Type))
		}
	}
	fmt.Println(table)
}

// Sessions prints the audit log.
func (pp *PrettyPrint) Sessions(s *challenge.State) {
	if len(s.Sessions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	table := uitable.New()
	table.AddRow("DAY", "START", "END", "DURATION")
	for _, sess := range s.Sessions {
		table.AddRow(
			fmt.Sprintf("%d", sess.DayIndex+1),
			sess.Start.Local().Format("2006-01-02 15:04:05"),
			sess.End.Local().Format("2006-01-02 15:04:05"),
			timeutil.FormatTime(sess.Seconds),
		)
	}
	fmt.Println(table)
}

func typeColor(t challenge.TreeType) *color.Color {
	switch t {
	case challenge.TreeGolden:
		return color.New(color.FgYellow)
	case challenge.TreeCrystal:
		return color.New(color.FgCyan)
	case challenge.TreeMythic:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgGreen)
	}
}

func progressBar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

var motivations = []string{
	"You got this! Stay focused.",
	"Small steps daily = big wins.",
	"Consistency beats intensity.",
	"Keep going. You're doing great.",
	"Focus on the process, not the outcome.",
	"Every hour counts.",
}

// Motivation returns a random motivational message.
func Motivation() string {
	return motivations[rand.Intn(len(motivations))]
}
