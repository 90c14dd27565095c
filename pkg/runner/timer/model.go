package timerui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/glyph"
	"tableflip.dev/study45/pkg/notify"
	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
	"tableflip.dev/study45/pkg/timeutil"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	clockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
	barFill     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barEmpty    = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	st       *challenge.State
	p        store.Persistence
	pub      *publisher
	clock    timer.Clock
	acc      *timer.Accumulator
	notifier notify.Notifier

	status       string
	motivation   string
	pendingReset bool
	quitting     bool
}

func newModel(st *challenge.State, p store.Persistence, pub *publisher, clock timer.Clock) model {
	return model{
		st:         st,
		p:          p,
		pub:        pub,
		clock:      clock,
		acc:        timer.New(st, clock),
		notifier:   notify.Desktop(),
		motivation: printers.Motivation(),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.evaluate()
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			m.pendingReset = false
			if err := m.acc.Start(); err != nil {
				m.status = "No active challenge day — set a start date first."
			} else {
				m.status = "Timer running."
			}
		case "p":
			m.pendingReset = false
			m.pause()
		case "r":
			if m.pendingReset {
				m.pendingReset = false
				m.resetToday()
			} else {
				m.pendingReset = true
				m.status = "Press r again to reset today's timer."
			}
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// evaluate runs one periodic accumulation step and fans out its side
// effects: durable write on minute boundaries, threshold notifications, and
// tree planting on goal.
func (m *model) evaluate() {
	tick := m.acc.Evaluate()
	if !tick.Applied {
		return
	}

	if tick.GoalReached {
		m.sendNotification("Goal Reached!", fmt.Sprintf("You've studied for %d hours today!", challenge.GoalHours))
		m.motivation = fmt.Sprintf("Wow! You completed %d hours today!", challenge.GoalHours)
		if tick.Day >= 0 {
			if _, planted := m.st.PlantTree(tick.Day, m.clock.Now()); planted {
				m.status = "Tree fully grown and planted!"
			}
			m.save()
		}
	}
	// The goal lands on a whole hour, so both notifications fire there.
	if tick.HourMark > 0 && m.st.RemindersEnabled {
		plural := ""
		if tick.HourMark > 1 {
			plural = "s"
		}
		m.sendNotification("Hourly Update", fmt.Sprintf("You've studied for %d hour%s. Keep it up!", tick.HourMark, plural))
	}

	// Durable write each full minute to bound loss on abrupt termination.
	if tick.MinuteBoundary && !tick.GoalReached {
		m.save()
	}
}

func (m *model) pause() {
	if !m.acc.Running() {
		return
	}
	if _, recorded := m.acc.Pause(); recorded {
		m.save()
		m.status = "Paused. Session recorded."
	} else {
		m.status = "Paused."
	}
}

func (m *model) resetToday() {
	m.pause()
	if m.st.ResetToday(m.clock.Now()) {
		m.acc.Repin(0)
		m.save()
		m.status = "Today's timer reset."
	} else {
		m.status = "No active challenge day."
	}
}

func (m *model) save() {
	if err := m.p.Save(m.st); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	m.pub.schedule(m.st)
}

func (m *model) sendNotification(title, body string) {
	if m.st.RemindersEnabled {
		m.notifier.Notify(title, body)
	}
}

// shutdown pauses a still-running timer so its session is recorded before
// the process exits.
func (m model) shutdown() {
	m.pause()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var label string
	now := m.clock.Now()
	if idx, ok := m.st.DayIndex(now); ok {
		label = fmt.Sprintf("Day %d of %d — %s", idx+1, challenge.Days, now.Format("Mon Jan 2 2006"))
	} else {
		label = "Challenge not started or ended"
	}

	seconds := m.acc.Seconds()
	stage := challenge.TreeStage(seconds)

	s := titleStyle.Render("45-Day Study Challenge") + "\n\n"
	s += label + "\n"
	s += clockStyle.Render(timeutil.FormatTime(seconds))
	s += faintStyle.Render(fmt.Sprintf("  (%.2f hrs / %d hrs goal)", timeutil.ToHours(seconds), challenge.GoalHours))
	s += "\n" + renderBar(seconds, challenge.GoalSeconds, 30) + "\n\n"

	for _, row := range glyph.Tree(stage) {
		s += "  " + row + "\n"
	}
	s += faintStyle.Render(fmt.Sprintf("%s (stage %d of %d)", glyph.StageName(stage), stage, challenge.MaxTreeStage)) + "\n\n"

	state := "stopped"
	if m.acc.Running() {
		state = "running"
	}
	s += fmt.Sprintf("Timer %s.\n", state)
	if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}
	s += faintStyle.Render(m.motivation) + "\n\n"
	s += faintStyle.Render("s start • p pause • r reset today • q quit") + "\n"
	return s
}

func renderBar(value, max, width int) string {
	filled := value * width / max
	if filled > width {
		filled = width
	}
	bar := barFill.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
	return "[" + bar + "]"
}
