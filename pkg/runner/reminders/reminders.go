// Package reminders provides the reminder toggle runner.
package reminders

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/notify"
	"tableflip.dev/study45/pkg/store"
)

// Reminders toggles hourly reminder notifications.
type Reminders struct {
	Persistence store.Persistence
	Remote      cloud.Remote
	Notifier    notify.Notifier
}

func (n *Reminders) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle reminders, no persistence")
	}
	remote := n.Remote
	if remote == nil {
		remote = cloud.Nop()
	}
	notifier := n.Notifier
	if notifier == nil {
		notifier = notify.Desktop()
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	st.RemindersEnabled = !st.RemindersEnabled
	if err := n.Persistence.Save(st); err != nil {
		return err
	}
	cloud.Publish(ctx, remote, st)

	if st.RemindersEnabled {
		fmt.Println("Reminders: On")
		notifier.Notify("Reminders Enabled", "We'll notify you every hour.")
	} else {
		fmt.Println("Reminders: Off")
	}
	return nil
}
