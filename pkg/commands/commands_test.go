package commands

import "testing"

func TestVerbsRegisterJSONFlag(t *testing.T) {
	root := New()
	verbs := []string{
		"timer", "status", "grid", "edit", "complete", "reset",
		"start-date", "reminders", "forest", "sessions", "export", "sync",
	}
	for _, name := range verbs {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("verb %q not registered: %v", name, err)
		}
		if cmd.Flags().Lookup("json") == nil {
			t.Errorf("verb %q missing the json flag", name)
		}
	}
}
