// Package complete provides the mark-today-complete runner.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
)

// Complete sets today to the goal and plants its tree.
type Complete struct {
	Persistence store.Persistence
	Remote      cloud.Remote
	Clock       timer.Clock
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}
	clock := n.Clock
	if clock == nil {
		clock = timer.SystemClock()
	}
	remote := n.Remote
	if remote == nil {
		remote = cloud.Nop()
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	now := clock.Now()
	idx, ok := st.DayIndex(now)
	if !ok {
		fmt.Println("Challenge not started or ended; nothing changed.")
		return nil
	}

	if err := st.SetDaySeconds(idx, challenge.GoalSeconds, now); err != nil {
		return err
	}
	tree, planted := st.PlantTree(idx, now)

	if err := n.Persistence.Save(st); err != nil {
		return err
	}
	cloud.Publish(ctx, remote, st)

	fmt.Printf("Day %d marked as complete. Great work.\n", idx+1)
	if planted {
		fmt.Printf("A %s tree was planted for day %d.\n", tree.Type, idx+1)
	}
	pp := printers.PrettyPrint{}
	pp.Summary(st.Summarize(), st.Streaks(now))
	return nil
}
