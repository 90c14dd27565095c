// Package status provides the summary panel runner.
package status

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
)

// Status prints today's progress and the completion summary.
type Status struct {
	Persistence store.Persistence
	Clock       timer.Clock
}

// Do renders the derived views of the current state.
func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get status, no persistence")
	}
	clock := n.Clock
	if clock == nil {
		clock = timer.SystemClock()
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	now := clock.Now()
	if idx, ok := st.DayIndex(now); ok {
		date, _ := st.DayDate(idx)
		pp.Today(fmt.Sprintf("Day %d of %d — %s", idx+1, len(st.Days), date.Format("Mon Jan 2 2006")), st.Days[idx])
	} else {
		pp.TodayInactive()
	}
	pp.NewLine()

	pp.Title("Summary")
	pp.Summary(st.Summarize(), st.Streaks(now))
	return nil
}
