// Package grid provides the day-by-day grid runner.
package grid

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
)

// Grid prints the full 45-day window as a table.
type Grid struct {
	Persistence store.Persistence
}

func (n *Grid) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get grid, no persistence")
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("45-Day Challenge")
	pp.DayGrid(st)
	return nil
}
