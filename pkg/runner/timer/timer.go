// Package timerui provides the interactive study timer.
package timerui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/store"
	"tableflip.dev/study45/pkg/timer"
)

// Timer runs the interactive timer over the persisted challenge state.
type Timer struct {
	Persistence store.Persistence
	Remote      cloud.Remote
}

// Do reconciles against the remote store, then hands control to the timer UI
// until the user quits. Pending writes are flushed on the way out.
func (n *Timer) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not run timer, no persistence")
	}
	remote := n.Remote
	if remote == nil {
		remote = cloud.Nop()
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	st, _ = cloud.Sync(ctx, st, remote, n.Persistence)

	pub := newPublisher(ctx, remote)
	m := newModel(st, n.Persistence, pub, timer.SystemClock())

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok {
		fm.shutdown()
	}
	pub.flush()
	return remote.Close()
}

// publisher is the single-slot "latest pending write" behind the debounce
// window: every local save replaces the snapshot, and at most one remote
// write per window goes out.
type publisher struct {
	ctx    context.Context
	remote cloud.Remote
	deb    *cloud.Debouncer

	mu      sync.Mutex
	pending *challenge.State
}

func newPublisher(ctx context.Context, remote cloud.Remote) *publisher {
	p := &publisher{ctx: ctx, remote: remote}
	p.deb = cloud.NewDebouncer(cloud.DebounceWindow, p.publish)
	return p
}

func (p *publisher) schedule(s *challenge.State) {
	p.mu.Lock()
	p.pending = s.Clone()
	p.mu.Unlock()
	p.deb.Trigger()
}

func (p *publisher) publish() {
	p.mu.Lock()
	snapshot := p.pending
	p.pending = nil
	p.mu.Unlock()
	if snapshot == nil {
		return
	}
	if err := p.remote.Publish(p.ctx, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "cloud: publish: %v\n", err)
	}
}

func (p *publisher) flush() {
	p.deb.Stop()
	p.publish()
}
