package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/htscan/internal/core/aggregate"
	"github.com/example/htscan/internal/models"
	"github.com/example/htscan/internal/ports/primary"
	"github.com/example/htscan/internal/ports/secondary"
)

// ErrMasterEmpty is returned when an empty master is saved.
var ErrMasterEmpty = errors.New("no master entries to save")

// MasterBuilder is the check-master workflow: a presence-only set of
// scanned codes. Duplicate scans signal "already registered" instead of
// counting. Save persists the built list for delivery-check sessions.
type MasterBuilder struct {
	codes   *aggregate.Registry
	masters primary.MasterService
	audit   secondary.AuditWriter
}

// NewMasterBuilder creates an empty builder.
func NewMasterBuilder(clock secondary.Clock, masters primary.MasterService, audit secondary.AuditWriter) *MasterBuilder {
	return &MasterBuilder{
		codes:   aggregate.NewRegistry(clock.Now),
		masters: masters,
		audit:   audit,
	}
}

// Scan registers one code. Returns false when the code is already
// registered; nothing changes in that case.
func (b *MasterBuilder) Scan(ctx context.Context, code string) bool {
	if !b.codes.Ingest(code) {
		s := fmt.Sprintf("master scan ignored, already registered: %s", code)
		b.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryScan, s)
		return false
	}
	b.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryScan, fmt.Sprintf("master entry added: %s", code))
	return true
}

// Remove deletes a registered code. Returns false when absent.
func (b *MasterBuilder) Remove(ctx context.Context, code string) bool {
	if !b.codes.Remove(code) {
		return false
	}
	b.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, fmt.Sprintf("master entry removed: %s", code))
	return true
}

// Codes returns registered codes in registration order.
func (b *MasterBuilder) Codes() []string {
	return b.codes.Codes()
}

// Len returns the number of registered codes.
func (b *MasterBuilder) Len() int {
	return b.codes.Len()
}

// Clear resets the builder.
func (b *MasterBuilder) Clear(ctx context.Context) {
	b.codes.Clear()
	b.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, "master builder cleared")
}

// Save persists the built master. Entries built on the device are
// presence-only, so each code is saved with an expected quantity of 1.
func (b *MasterBuilder) Save(ctx context.Context) (int, error) {
	codes := b.codes.Codes()
	if len(codes) == 0 {
		return 0, ErrMasterEmpty
	}

	items := make([]models.MasterItem, len(codes))
	for i, code := range codes {
		items[i] = models.MasterItem{Code: code, Expected: 1}
	}

	if err := b.masters.SaveMaster(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to save master: %w", err)
	}
	return len(items), nil
}
