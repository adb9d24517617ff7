// Package cli provides thin CLI adapters that translate between CLI
// concerns and application services. Adapters handle output formatting
// but delegate all logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/htscan/internal/ports/primary"
)

// DataAdapter translates queue operations to terminal output. It depends
// only on the QueueService interface, enabling easy testing with mocks.
type DataAdapter struct {
	queue primary.QueueService
	out   io.Writer
}

// NewDataAdapter creates a new DataAdapter with the given service.
func NewDataAdapter(queue primary.QueueService, out io.Writer) *DataAdapter {
	return &DataAdapter{
		queue: queue,
		out:   out,
	}
}

// Append captures one scanned value into the queue.
func (a *DataAdapter) Append(ctx context.Context, value string) error {
	event, err := a.queue.Append(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to capture scan: %w", err)
	}

	count, err := a.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count queue: %w", err)
	}

	fmt.Fprintf(a.out, "%s %s  (%d queued)\n", color.New(color.FgGreen).Sprint("✓"), event.Value, count)
	return nil
}

// List prints all queued events in insertion order.
func (a *DataAdapter) List(ctx context.Context) error {
	events, err := a.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queue: %w", err)
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No queued data.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tVALUE\tSCANNED\tID")
	for i, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, e.Value, e.ScannedAt.Format("15:04:05"), e.ID)
	}
	w.Flush()
	fmt.Fprintf(a.out, "\n%d records queued\n", len(events))
	return nil
}

// Remove deletes one queued event by id.
func (a *DataAdapter) Remove(ctx context.Context, id string) error {
	if err := a.queue.RemoveByID(ctx, id); err != nil {
		return fmt.Errorf("failed to remove event: %w", err)
	}
	fmt.Fprintf(a.out, "Removed %s\n", id)
	return nil
}

// Clear deletes every queued event.
func (a *DataAdapter) Clear(ctx context.Context) error {
	if err := a.queue.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	fmt.Fprintln(a.out, "Queue cleared.")
	return nil
}

// Status prints the queue badge count.
func (a *DataAdapter) Status(ctx context.Context) error {
	count, err := a.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count queue: %w", err)
	}
	fmt.Fprintf(a.out, "%d records queued\n", count)
	return nil
}
