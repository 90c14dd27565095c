// Package notify raises fire-and-forget desktop notifications for hourly
// reminders and goal completion.
package notify

import (
	"fmt"
	"os"

	"github.com/gen2brain/beeep"
)

// Notifier is the fire-and-forget notification contract. Implementations
// never return errors to callers; a missing platform capability degrades to
// silence.
type Notifier interface {
	Notify(title, body string)
}

// Desktop returns a Notifier backed by the platform notification service.
func Desktop() Notifier { return desktop{} }

type desktop struct{}

func (desktop) Notify(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		fmt.Fprintf(os.Stderr, "notify: %v\n", err)
	}
}

// Nop returns a Notifier that discards everything, used when reminders are
// disabled.
func Nop() Notifier { return nop{} }

type nop struct{}

func (nop) Notify(string, string) {}
