package app

import (
	"context"
	"fmt"

	"github.com/example/htscan/internal/core/aggregate"
	"github.com/example/htscan/internal/ports/secondary"
)

// ShippingSession is the outbound workflow: plain counted aggregation of
// scanned codes, session-scoped.
type ShippingSession struct {
	items *aggregate.Counter
	audit secondary.AuditWriter
}

// NewShippingSession creates an empty shipping session.
func NewShippingSession(clock secondary.Clock, audit secondary.AuditWriter) *ShippingSession {
	return &ShippingSession{
		items: aggregate.NewCounter(clock.Now),
		audit: audit,
	}
}

// Scan folds one code into the session.
func (s *ShippingSession) Scan(ctx context.Context, code string) *aggregate.Item {
	item := s.items.Ingest(code)
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryScan, fmt.Sprintf("shipping scan: %s x%d", code, item.Quantity))
	return item
}

// Items returns counted entries in first-scan order.
func (s *ShippingSession) Items() []*aggregate.Item {
	return s.items.Items()
}

// Totals returns the session totals.
func (s *ShippingSession) Totals() aggregate.Totals {
	return s.items.Totals()
}

// Clear resets the session.
func (s *ShippingSession) Clear(ctx context.Context) {
	s.items.Clear()
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, "shipping session cleared")
}

// Complete finishes the session, requiring at least one counted item, and
// resets it.
func (s *ShippingSession) Complete(ctx context.Context) (*aggregate.Totals, error) {
	if s.items.Len() == 0 {
		return nil, ErrSessionEmpty
	}

	totals := s.items.Totals()
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation,
		fmt.Sprintf("shipping complete: items=%d total=%d", totals.DistinctCount, totals.TotalQuantity))
	s.items.Clear()
	return &totals, nil
}
