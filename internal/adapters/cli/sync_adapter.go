package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/htscan/internal/ports/primary"
)

// SyncAdapter translates sync operations to terminal output.
type SyncAdapter struct {
	sync  primary.SyncService
	queue primary.QueueService
	out   io.Writer
}

// NewSyncAdapter creates a new SyncAdapter with the given services.
func NewSyncAdapter(sync primary.SyncService, queue primary.QueueService, out io.Writer) *SyncAdapter {
	return &SyncAdapter{
		sync:  sync,
		queue: queue,
		out:   out,
	}
}

// Probe reports collector reachability.
func (a *SyncAdapter) Probe(ctx context.Context) error {
	if a.sync.ProbeReachability(ctx) {
		fmt.Fprintf(a.out, "%s collector reachable\n", color.New(color.FgGreen).Sprint("✓"))
	} else {
		fmt.Fprintf(a.out, "%s collector unreachable\n", color.New(color.FgRed).Sprint("✗"))
	}
	return nil
}

// Send transmits the whole queue. When clearAfter is set, a successful
// send is followed by clearing the queue; otherwise the queue is left
// intact for an explicit clear.
func (a *SyncAdapter) Send(ctx context.Context, clearAfter bool) error {
	events, err := a.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queue: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No queued data to send.")
		return nil
	}

	result := a.sync.Send(ctx, events)
	if !result.Success {
		fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgRed).Sprint("✗"), result.Message)
		fmt.Fprintf(a.out, "%d records kept for retry\n", len(events))
		return nil
	}

	fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), result.Message)
	if clearAfter {
		if err := a.queue.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear queue after send: %w", err)
		}
		fmt.Fprintln(a.out, "Queue cleared.")
	} else {
		fmt.Fprintln(a.out, "Run 'htscan data clear' to remove the sent records.")
	}
	return nil
}

// Receive downloads the check master.
func (a *SyncAdapter) Receive(ctx context.Context) error {
	result := a.sync.ReceiveMaster(ctx)
	if !result.Success {
		fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgRed).Sprint("✗"), result.Message)
		return nil
	}

	fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), result.Message)
	fmt.Fprintf(a.out, "Updated: %s\n", result.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
