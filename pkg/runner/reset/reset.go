// Package reset provides the challenge reset runners.
package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
)

// Reset clears today's counter or the whole challenge. A whole-challenge
// reset re-anchors the start date at today and clears days and sessions; the
// forest survives.
type Reset struct {
	Today       bool
	Yes         bool
	Persistence store.Persistence
	Remote      cloud.Remote
	Clock       timer.Clock
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not reset, no persistence")
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

	if n.Today {
		if !n.Yes && !printers.Confirm("Reset today's timer?") {
			fmt.Println("Nothing changed.")
			return nil
		}
		if !st.ResetToday(now) {
			fmt.Println("Challenge not started or ended; nothing changed.")
			return nil
		}
		fmt.Println("Today's timer reset.")
	} else {
		if !n.Yes && !printers.Confirm("Reset whole challenge? This cannot be undone.") {
			fmt.Println("Nothing changed.")
			return nil
		}
		st.ResetAll(now)
		fmt.Printf("Challenge reset. New start date: %s.\n", st.StartDate)
	}

	if err := n.Persistence.Save(st); err != nil {
		return err
	}
	cloud.Publish(ctx, remote, st)
	return nil
}
