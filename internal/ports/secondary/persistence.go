// Package secondary defines the secondary ports (driven adapters) for
// htscan: durable state, the remote collector, the audit sink, and the
// clock. Implementations live in internal/adapters.
package secondary

import "context"

// Well-known state keys. Each key holds one serialized value; an absent key
// is equivalent to empty state.
const (
	StateKeyScanEvents  = "scan_events"
	StateKeyCheckMaster = "check_master"
)

// StateStore is the durable key/value backing for application state.
// Every mutation of a stored sequence goes through a full
// read-modify-write-persist cycle at the caller; the store itself only
// moves opaque bytes.
type StateStore interface {
	// Get returns the value for key. The second return is false when the
	// key is absent; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
