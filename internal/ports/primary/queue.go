// Package primary defines the primary ports (driving interfaces) for
// htscan services. CLI commands depend on these interfaces only.
package primary

import (
	"context"

	"github.com/example/htscan/internal/models"
)

// QueueService is the durable event queue: the single source of truth for
// what has been scanned but not yet sent. Every mutation is write-through
// and emits an audit entry.
type QueueService interface {
	// Append accepts one scanned value, assigns a fresh id and timestamp,
	// and persists it immediately. Duplicate values are allowed and
	// meaningful: repeat scans of the same code are independent events.
	Append(ctx context.Context, value string) (*models.ScanEvent, error)

	// List returns all stored events in insertion order.
	List(ctx context.Context) ([]models.ScanEvent, error)

	// RemoveByID removes exactly one event. Removing an absent id is a
	// silent no-op, not an error.
	RemoveByID(ctx context.Context, id string) error

	// ClearAll removes every event and persists the empty state.
	ClearAll(ctx context.Context) error

	// Count returns the number of stored events without materializing
	// them for the caller.
	Count(ctx context.Context) (int, error)
}
