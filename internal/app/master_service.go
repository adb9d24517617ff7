package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/htscan/internal/models"
	"github.com/example/htscan/internal/ports/secondary"
)

// MasterServiceImpl implements the MasterService interface over a
// StateStore. The check master shares the store's single-key layout with
// the event queue: one serialized value, replaced whole on save.
type MasterServiceImpl struct {
	store secondary.StateStore
	audit secondary.AuditWriter
	clock secondary.Clock
}

// NewMasterService creates a MasterService with injected dependencies.
func NewMasterService(store secondary.StateStore, audit secondary.AuditWriter, clock secondary.Clock) *MasterServiceImpl {
	return &MasterServiceImpl{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// SaveMaster persists a check master built on the device.
func (s *MasterServiceImpl) SaveMaster(ctx context.Context, items []models.MasterItem) error {
	master := models.MasterList{
		Items:     items,
		UpdatedAt: s.clock.Now(),
	}

	raw, err := json.Marshal(master)
	if err != nil {
		return fmt.Errorf("failed to serialize check master: %w", err)
	}
	if err := s.store.Put(ctx, secondary.StateKeyCheckMaster, raw); err != nil {
		return fmt.Errorf("failed to persist check master: %w", err)
	}

	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, fmt.Sprintf("check master saved: %d records", len(items)))
	return nil
}

// LoadMaster returns the stored check master. Absent and malformed content
// both load as an empty list, mirroring the queue's fail-closed policy.
func (s *MasterServiceImpl) LoadMaster(ctx context.Context) (*models.MasterList, error) {
	raw, ok, err := s.store.Get(ctx, secondary.StateKeyCheckMaster)
	if err != nil {
		return nil, fmt.Errorf("failed to read check master: %w", err)
	}
	if !ok {
		return &models.MasterList{}, nil
	}

	var master models.MasterList
	if err := json.Unmarshal(raw, &master); err != nil {
		s.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryOperation, "stored check master unreadable, treating as empty")
		return &models.MasterList{}, nil
	}
	return &master, nil
}
