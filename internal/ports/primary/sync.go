package primary

import (
	"context"

	"github.com/example/htscan/internal/models"
)

// SyncService moves queued data to the collector and downloads check
// masters. Failures are data, not errors: both directions report outcome
// structs and never panic past this boundary. Retry policy belongs to the
// caller.
type SyncService interface {
	// ProbeReachability checks the coarse connectivity signal first (no
	// HTTP attempted when offline), then probes the collector endpoint
	// with a bounded timeout. False on any failure.
	ProbeReachability(ctx context.Context) bool

	// Send transmits the batch in one request. It never retries and never
	// clears the queue itself; a successful send is followed by an
	// explicit caller-driven clear.
	Send(ctx context.Context, events []models.ScanEvent) *models.SyncResult

	// ReceiveMaster downloads the current check master and persists it
	// for delivery-check sessions.
	ReceiveMaster(ctx context.Context) *models.ReceiveResult
}
