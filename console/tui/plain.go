package tui

import (
	"context"
	"fmt"
	"io"
	"time"
)

// PrintOnce writes the selected view as plain text. Used when stdout is not a
// terminal, e.g. piped into a file or a cron log.
func PrintOnce(w io.Writer, mode ViewMode, backend Backend, machineID int64, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch mode {
	case ModeOperator:
		c, err := backend.Catalog(ctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		_, err = io.WriteString(w, catalogText(c))
		return err
	case ModeFloor:
		q, err := backend.MachineQueue(ctx, machineID)
		if err != nil {
			return fmt.Errorf("load machine %d queue: %w", machineID, err)
		}
		_, err = io.WriteString(w, queueText(q))
		return err
	default:
		r, err := backend.Report(ctx)
		if err != nil {
			return fmt.Errorf("load report: %w", err)
		}
		_, err = io.WriteString(w, reportText(r))
		return err
	}
}
