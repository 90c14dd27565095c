// Package startdate provides the start-date runner.
package startdate

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
)

// StartDate re-anchors the challenge at a new date. Existing progress is
// cleared, so a confirmation is required when any exists.
type StartDate struct {
	Date        string
	Yes         bool
	Persistence store.Persistence
	Remote      cloud.Remote
	Clock       timer.Clock
}

func (n *StartDate) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set start date, no persistence")
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

	if st.HasProgress() && !n.Yes &&
		!printers.Confirm("Changing start date will reset progress. Continue?") {
		fmt.Println("Nothing changed.")
		return nil
	}

	if err := st.SetStartDate(n.Date, clock.Now()); err != nil {
		return err
	}
	if err := n.Persistence.Save(st); err != nil {
		return err
	}
	cloud.Publish(ctx, remote, st)

	fmt.Printf("Challenge starts %s.\n", st.StartDate)
	return nil
}
