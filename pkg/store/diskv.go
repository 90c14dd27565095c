// Package store persists the challenge state as a single JSON document in a
// diskv-backed directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/study45/pkg/challenge"
	"tableflip.dev/study45/pkg/timer"
)

const stateKey = "state"

// Persistence is the local durability contract. Load never fails on a
// missing or corrupt document: the worst case is a fresh default state.
type Persistence interface {
	Load() (*challenge.State, error)
	Save(s *challenge.State) error
	Erase() error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		clock: timer.SystemClock(),
	}, nil
}

type persistence struct {
	d     *diskv.Diskv
	clock timer.Clock
}

// Load reads the state document. A missing document yields a fresh state
// anchored at today; an unparseable one is discarded the same way. Completed
// days missing a tree are backfilled here, at load time, and the repaired
// state is written back.
func (p *persistence) Load() (*challenge.State, error) {
	now := p.clock.Now()

	data, err := p.d.Read(stateKey)
	if err != nil {
		return challenge.New(now), nil
	}

	s := &challenge.State{}
	if err := json.Unmarshal(data, s); err != nil {
		fmt.Fprintf(os.Stderr, "store: state corrupted, reinitializing: %v\n", err)
		return challenge.New(now), nil
	}
	s.Normalize()
	if s.StartDate == "" {
		s.StartDate = now.Format("2006-01-02")
	}

	if added := s.Backfill(now); added > 0 {
		if err := p.Save(s); err != nil {
			fmt.Fprintf(os.Stderr, "store: save backfilled forest: %v\n", err)
		}
	}
	return s, nil
}

// Save touches the update timestamp and writes the whole document.
func (p *persistence) Save(s *challenge.State) error {
	s.Touch(p.clock.Now())
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: marshal state: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("store: write state: %w", err)
	}
	return nil
}

// Erase removes the state document.
func (p *persistence) Erase() error {
	if err := p.d.Erase(stateKey); err != nil {
		return fmt.Errorf("store: erase state: %w", err)
	}
	return nil
}

// WithClock returns a copy of the persistence using the provided clock, used
// by tests to pin updatedAt values.
func WithClock(p Persistence, clock timer.Clock) Persistence {
	if impl, ok := p.(*persistence); ok {
		return &persistence{d: impl.d, clock: clock}
	}
	return p
}
