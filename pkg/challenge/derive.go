package challenge

import (
	"math"
	"time"

	"tableflip.dev/study45/pkg/timeutil"
)

// MaxTreeStage is the fully grown stage.
const MaxTreeStage = 5

// Streaks holds the two streak views derived from the day record.
type Streaks struct {
	Current int
	Longest int
}

// Streaks computes the longest run of qualifying days over the whole window
// and the run of qualifying days ending at today. When no day is active the
// current streak is zero.
func (s *State) Streaks(now time.Time) Streaks {
	var out Streaks
	run := 0
	for i := 0; i < Days; i++ {
		if i < len(s.Days) && qualifies(s.Days[i]) {
			run++
		} else {
			if run > out.Longest {
				out.Longest = run
			}
			run = 0
		}
	}
	if run > out.Longest {
		out.Longest = run
	}

	if today, ok := s.DayIndex(now); ok {
		for i := today; i >= 0; i-- {
			if i < len(s.Days) && qualifies(s.Days[i]) {
				out.Current++
			} else {
				break
			}
		}
	}
	return out
}

// Summary is the completion panel derived from the day record.
type Summary struct {
	TotalSeconds int
	TotalHours   float64
	Completed    int
	AverageHours float64
	BestSeconds  int
	BestDay      int // zero-based index; ties resolve to the first occurrence
	Percent      int
}

// Summarize folds the day record into completion stats.
func (s *State) Summarize() Summary {
	var sum Summary
	for i, sec := range s.Days {
		sum.TotalSeconds += sec
		if qualifies(sec) {
			sum.Completed++
		}
		if sec > sum.BestSeconds {
			sum.BestSeconds = sec
			sum.BestDay = i
		}
	}
	sum.TotalHours = timeutil.ToHours(sum.TotalSeconds)
	sum.AverageHours = math.Round(sum.TotalHours/Days*100) / 100
	sum.Percent = int(math.Round(float64(sum.Completed) / Days * 100))
	return sum
}

// TreeStage maps accumulated seconds to a growth stage, 1 through
// MaxTreeStage, monotonic non-decreasing in seconds.
func TreeStage(seconds int) int {
	progress := math.Min(float64(seconds)/float64(GoalSeconds), 1)
	switch {
	case progress < 0.2:
		return 1
	case progress < 0.4:
		return 2
	case progress < 0.6:
		return 3
	case progress < 0.8:
		return 4
	default:
		return MaxTreeStage
	}
}

// TreeTypeForStreak maps the current streak at planting time to a rarity.
func TreeTypeForStreak(streak int) TreeType {
	switch {
	case streak >= 20:
		return TreeMythic
	case streak >= 10:
		return TreeCrystal
	case streak >= 5:
		return TreeGolden
	default:
		return TreeNormal
	}
}

func qualifies(sec int) bool {
	return sec >= GoalSeconds
}
