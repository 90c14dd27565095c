// Package sync provides the explicit remote reconciliation runner.
package sync

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/store"
)

// Sync reconciles local state against the remote document store using
// last-writer-wins.
type Sync struct {
	Persistence store.Persistence
	Remote      cloud.Remote
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not sync, no persistence")
	}
	if n.Remote == nil {
		return errors.New("no remote backend configured")
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	if id := n.Remote.ID(); id != "" {
		fmt.Printf("Signed in as %s.\n", id)
	}

	_, outcome := cloud.Sync(ctx, st, n.Remote, n.Persistence)
	switch outcome {
	case cloud.TookRemote:
		fmt.Println("Cloud data was newer; local state updated.")
	default:
		fmt.Println("Local data is newer or same; cloud updated.")
	}
	return nil
}
