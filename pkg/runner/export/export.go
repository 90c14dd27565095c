// Package export provides the CSV and report export runners.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/study45/pkg/export"
	"tableflip.dev/study45/pkg/store"
)

// Export writes the row-per-day extract as CSV, or the formatted report.
type Export struct {
	File        string
	Report      bool
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	st, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	if n.Report {
		out := export.Report(st)
		if n.File == "" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(n.File, []byte(out), 0o644); err != nil {
			return fmt.Errorf("export: write report: %w", err)
		}
		fmt.Printf("Report written to %s.\n", n.File)
		return nil
	}

	if n.File == "" {
		return export.CSV(st, os.Stdout)
	}
	f, err := os.Create(n.File)
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer f.Close()
	if err := export.CSV(st, f); err != nil {
		return err
	}
	fmt.Printf("CSV written to %s.\n", n.File)
	return nil
}
