package secondary

import "context"

// Audit levels.
const (
	AuditInfo  = "INFO"
	AuditWarn  = "WARN"
	AuditError = "ERROR"
)

// Audit categories.
const (
	CategoryScan      = "SCAN"
	CategoryOperation = "OPERATION"
	CategoryNetwork   = "NETWORK"
)

// AuditWriter is the sink for structured audit entries emitted on every
// mutating operation. Writes are fire-and-forget: implementations must
// never block or fail the calling operation, so there is no error return.
// Implementations extract the device identity from context.
type AuditWriter interface {
	Write(ctx context.Context, level, category, message string)
}
