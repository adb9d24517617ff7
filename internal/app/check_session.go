package app

import (
	"context"
	"fmt"

	"github.com/example/htscan/internal/core/reconcile"
	"github.com/example/htscan/internal/models"
	"github.com/example/htscan/internal/ports/secondary"
)

// CheckSession is the delivery-check workflow: scanned codes reconciled
// against an expected-items list fixed at session start.
type CheckSession struct {
	matcher *reconcile.Matcher
	audit   secondary.AuditWriter
}

// NewCheckSession seeds a session from a check master. The expected list
// is immutable for the session's lifetime.
func NewCheckSession(master *models.MasterList, audit secondary.AuditWriter) *CheckSession {
	expected := make([]reconcile.ExpectedItem, len(master.Items))
	for i, item := range master.Items {
		expected[i] = reconcile.ExpectedItem{Code: item.Code, Expected: item.Expected}
	}
	return &CheckSession{
		matcher: reconcile.NewMatcher(expected),
		audit:   audit,
	}
}

// Scan reconciles one code. Unregistered codes create nothing and are
// surfaced as informational failures; over-scans are warnings and the
// workflow continues.
func (s *CheckSession) Scan(ctx context.Context, code string) reconcile.Outcome {
	out := s.matcher.RecordScan(code)
	switch {
	case !out.Registered:
		s.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryScan, fmt.Sprintf("unregistered code: %s", code))
	case out.Status == reconcile.StatusOver:
		s.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryScan,
			fmt.Sprintf("over-scan: %s %d/%d", code, out.Scanned, out.Expected))
	default:
		s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryScan,
			fmt.Sprintf("check scan: %s %d/%d", code, out.Scanned, out.Expected))
	}
	return out
}

// Reset zeroes all scanned counts, leaving the expected list untouched.
func (s *CheckSession) Reset(ctx context.Context) {
	s.matcher.Reset()
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, "check session reset")
}

// Records returns all records in original master order.
func (s *CheckSession) Records() []reconcile.Record {
	return s.matcher.Records()
}

// Summary counts records by current status.
func (s *CheckSession) Summary() reconcile.Summary {
	return s.matcher.Summary()
}

// Len returns the number of expected records.
func (s *CheckSession) Len() int {
	return s.matcher.Len()
}
