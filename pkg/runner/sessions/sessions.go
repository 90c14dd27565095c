// Package sessions provides the session audit log runner.
package sessions

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/printers"
	"tableflip.dev/study45/pkg/store"
)

// Sessions prints the append-only session log.
type Sessions struct {
	Persistence store.Persistence
}

func (n *Sessions) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get sessions, no persistence")
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Sessions — %d recorded", len(st.Sessions)))
	pp.Sessions(st)
	return nil
}
