// Package edit provides the manual day-edit runner.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
	"tableflip.dev/study45/pkg/timeutil"
)

// Edit sets a day's accumulated hours directly. Day is one-based on the
// command surface; zero means "today".
type Edit struct {
	Day         int
	Hours       string
	Persistence store.Persistence
	Remote      cloud.Remote
	Clock       timer.Clock
}

// Do parses and clamps the hour value, stores it, and plants a tree when the
// edit marks the day complete. Unparseable input discards the edit.
func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	clock := n.Clock
	if clock == nil {
		clock = timer.SystemClock()
	}
	remote := n.Remote
	if remote == nil {
		remote = cloud.Nop()
	}

	hours, err := timeutil.ParseHours(n.Hours)
	if err != nil {
		fmt.Println("Not a number; nothing changed.")
		return nil
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	now := clock.Now()
	idx := n.Day - 1
	if n.Day == 0 {
		today, ok := st.DayIndex(now)
		if !ok {
			fmt.Println("Challenge not started or ended; nothing changed.")
			return nil
		}
		idx = today
	}

	seconds := timeutil.HoursToSeconds(hours)
	if err := st.SetDaySeconds(idx, seconds, now); err != nil {
		return err
	}
	if st.Days[idx] >= challenge.GoalSeconds {
		st.PlantTree(idx, now)
	}

	if err := n.Persistence.Save(st); err != nil {
		return err
	}
	cloud.Publish(ctx, remote, st)

	fmt.Printf("Day %d set to %.2f hrs.\n", idx+1, timeutil.ToHours(st.Days[idx]))
	pp := printers.PrettyPrint{}
	pp.Summary(st.Summarize(), st.Streaks(now))
	return nil
}
