// Package forest provides the tree gallery runner.
package forest

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
)

// Forest lists planted trees, or deletes one by ID.
type Forest struct {
	Delete      string
	Yes         bool
	ShowID      bool
	Persistence store.Persistence
	Remote      cloud.Remote
	Clock       timer.Clock
}

func (n *Forest) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get forest, no persistence")
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

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Delete != "" {
		if !n.Yes && !printers.Confirm("Are you sure you want to delete this tree? This cannot be undone.") {
			fmt.Println("Nothing changed.")
			return nil
		}
		if !st.DeleteTree(n.Delete, clock.Now()) {
			return fmt.Errorf("no tree with id %q", n.Delete)
		}
		if err := n.Persistence.Save(st); err != nil {
			return err
		}
		cloud.Publish(ctx, remote, st)
		fmt.Println("Tree deleted.")
	}

	fmt.Println("")
	pp.Title(fmt.Sprintf("Forest — %d trees", len(st.Forest)))
	pp.Forest(st)
	return nil
}
