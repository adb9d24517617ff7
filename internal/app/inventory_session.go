package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/htscan/internal/core/aggregate"
	"github.com/example/htscan/internal/ports/secondary"
)

// ScanMode selects what the next inventory scan means.
type ScanMode string

const (
	ModeLocation ScanMode = "location"
	ModeItem     ScanMode = "item"
)

// ErrNoLocation is returned when an item is scanned before any location.
var ErrNoLocation = errors.New("no location set: scan a location first")

// ErrSessionEmpty is returned when a session is completed without scans.
var ErrSessionEmpty = errors.New("no scanned items")

// InventorySession is the stocktake workflow: one location scan followed
// by counted item scans. State is session-scoped and never touches the
// durable queue.
type InventorySession struct {
	mode     ScanMode
	location string
	items    *aggregate.Counter
	audit    secondary.AuditWriter
}

// InventoryScan reports the effect of one inventory scan.
type InventoryScan struct {
	LocationSet bool
	Location    string
	Item        *aggregate.Item
}

// InventorySummary is the result of completing an inventory session.
type InventorySummary struct {
	Location string
	Totals   aggregate.Totals
}

// NewInventorySession creates a session starting in location mode.
func NewInventorySession(clock secondary.Clock, audit secondary.AuditWriter) *InventorySession {
	return &InventorySession{
		mode:  ModeLocation,
		items: aggregate.NewCounter(clock.Now),
		audit: audit,
	}
}

// Mode returns the current scan mode.
func (s *InventorySession) Mode() ScanMode {
	return s.mode
}

// Location returns the active location code, empty until one is scanned.
func (s *InventorySession) Location() string {
	return s.location
}

// EnterLocationMode makes the next scan set the location.
func (s *InventorySession) EnterLocationMode() {
	s.mode = ModeLocation
}

// Scan folds one code into the session. In location mode the code becomes
// the active location and the session switches to item mode; in item mode
// the code is counted. Item scans without a location are rejected.
func (s *InventorySession) Scan(ctx context.Context, code string) (*InventoryScan, error) {
	if s.mode == ModeLocation {
		s.location = code
		s.mode = ModeItem
		s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, fmt.Sprintf("inventory location set: %s", code))
		return &InventoryScan{LocationSet: true, Location: code}, nil
	}

	if s.location == "" {
		return nil, ErrNoLocation
	}

	item := s.items.Ingest(code)
	if item.Quantity > 1 {
		s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryScan, fmt.Sprintf("inventory scan: %s x%d", code, item.Quantity))
	} else {
		s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryScan, fmt.Sprintf("inventory scan: %s (new)", code))
	}
	return &InventoryScan{Item: item}, nil
}

// Items returns counted entries in first-scan order.
func (s *InventorySession) Items() []*aggregate.Item {
	return s.items.Items()
}

// Totals returns the session totals.
func (s *InventorySession) Totals() aggregate.Totals {
	return s.items.Totals()
}

// Clear resets items, location, and mode.
func (s *InventorySession) Clear(ctx context.Context) {
	s.items.Clear()
	s.location = ""
	s.mode = ModeLocation
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, "inventory session cleared")
}

// Complete finishes the session. It requires at least one counted item,
// returns the summary, and resets the session for the next location.
func (s *InventorySession) Complete(ctx context.Context) (*InventorySummary, error) {
	if s.items.Len() == 0 {
		return nil, ErrSessionEmpty
	}

	summary := &InventorySummary{
		Location: s.location,
		Totals:   s.items.Totals(),
	}
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation,
		fmt.Sprintf("inventory complete: location=%s items=%d", summary.Location, summary.Totals.DistinctCount))

	s.items.Clear()
	s.location = ""
	s.mode = ModeLocation
	return summary, nil
}
