package cloud

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/study45/pkg/challenge"
)

// Outcome reports which snapshot a reconciliation kept.
type Outcome int

const (
	KeptLocal Outcome = iota
	TookRemote
)

// Reconcile resolves a local and a remote snapshot to a single one. The
// remote wins in full, whole document, iff its update timestamp is strictly
// newer; equal timestamps keep local. There is no field-level merge: the data
// is single-owner and the documented policy is last-writer-wins.
func Reconcile(local, remote *challenge.State) (*challenge.State, Outcome) {
	if remote != nil && remote.UpdatedAt > local.UpdatedAt {
		return remote, TookRemote
	}
	return local, KeptLocal
}

// Publish pushes a snapshot best-effort: failures are logged and swallowed
// so local operation is never blocked on the remote.
func Publish(ctx context.Context, remote Remote, s *challenge.State) {
	if err := remote.Publish(ctx, s); err != nil {
		fmt.Fprintf(os.Stderr, "cloud: publish: %v\n", err)
	}
}

// Saver persists a snapshot locally; satisfied by store.Persistence.
type Saver interface {
	Save(s *challenge.State) error
}

// Sync performs the startup reconciliation flow: fetch the remote document,
// apply last-writer-wins, and push whichever side lost. An absent remote
// document gets the local state published eagerly (first sync for this
// identity). Remote failures are logged and swallowed; the returned state is
// always usable.
func Sync(ctx context.Context, local *challenge.State, remote Remote, saver Saver) (*challenge.State, Outcome) {
	rs, present, err := remote.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cloud: fetch: %v\n", err)
		return local, KeptLocal
	}
	if !present {
		if err := remote.Publish(ctx, local); err != nil {
			fmt.Fprintf(os.Stderr, "cloud: publish: %v\n", err)
		}
		return local, KeptLocal
	}

	resolved, outcome := Reconcile(local, rs)
	switch outcome {
	case TookRemote:
		if saver != nil {
			if err := saver.Save(resolved); err != nil {
				fmt.Fprintf(os.Stderr, "cloud: save remote state: %v\n", err)
			}
		}
	case KeptLocal:
		if err := remote.Publish(ctx, resolved); err != nil {
			fmt.Fprintf(os.Stderr, "cloud: publish: %v\n", err)
		}
	}
	return resolved, outcome
}
