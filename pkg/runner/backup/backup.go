// Package backup exports and imports the full tweek- namespace.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/printers"
	"tableflip.dev/tweek/pkg/store"
)

type Export struct {
	Persistence store.Persistence
	Path        string // empty: planner-backup-<today>.json in the cwd
	Summary     bool
}

func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("backup: no persistence")
	}
	svc := app.New(e.Persistence)
	payload, err := svc.Export(ctx)
	if err != nil {
		return err
	}

	path := e.Path
	if path == "" {
		path = app.ExportFilename(time.Now())
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("backup: write %s: %w", path, err)
	}

	if e.Summary {
		snap, err := e.Persistence.Snapshot(ctx)
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{}
		pp.Snapshot(snap)
	}
	_, _ = fmt.Fprintf(color.Output, "exported to %s\n", path)
	return nil
}

type Import struct {
	Persistence store.Persistence
	Path        string
}

// Do replaces the namespace with the file's contents. A file that does not
// parse as JSON aborts before anything is cleared.
func (i *Import) Do(ctx context.Context) error {
	if i.Persistence == nil {
		return errors.New("backup: no persistence")
	}
	payload, err := os.ReadFile(i.Path)
	if err != nil {
		return fmt.Errorf("backup: read %s: %w", i.Path, err)
	}
	svc := app.New(i.Persistence)
	if err := svc.Import(ctx, payload); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, "import successful")
	return nil
}
