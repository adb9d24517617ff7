package secondary

import (
	"context"
	"fmt"

	"github.com/example/htscan/internal/models"
)

// Collector is the remote endpoint that receives queued scan data and
// serves check masters. One implementation talks HTTP; tests use mocks.
type Collector interface {
	// Probe issues a lightweight reachability check against the collector.
	// A response of any status counts as reachable; only transport-level
	// failures (timeout, connection refused) return an error.
	Probe(ctx context.Context) error

	// Push transmits one batch in a single request. A non-2xx response
	// returns a *ServerError; transport failures return other errors.
	// The protocol is all-or-nothing per call.
	Push(ctx context.Context, batch models.ScanBatch) error

	// FetchMaster downloads the current check master.
	FetchMaster(ctx context.Context) (*models.MasterList, error)
}

// NetworkSignal reports the coarse device-level connectivity state. When it
// reports offline, callers skip the HTTP probe entirely.
type NetworkSignal interface {
	Online() bool
}

// ServerError is returned by Collector calls when the server responds with
// a non-2xx status. Queued data is preserved so the caller can retry.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Status)
}
