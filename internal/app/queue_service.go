// Package app implements the primary ports: the event queue, sync and
// master services, and the per-workflow scan sessions. Services depend
// only on secondary ports, so every collaborator can be mocked in tests.
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/htscan/internal/models"
	"github.com/example/htscan/internal/ports/secondary"
)

// QueueServiceImpl implements the QueueService interface over a StateStore.
// The whole event sequence lives under one state key; every mutation is a
// full read-modify-write-persist cycle. That is a correctness requirement
// given the serialized single-key layout, not an optimization target.
type QueueServiceImpl struct {
	store secondary.StateStore
	audit secondary.AuditWriter
	clock secondary.Clock
	newID func() string
}

// NewQueueService creates a QueueService with injected dependencies.
func NewQueueService(store secondary.StateStore, audit secondary.AuditWriter, clock secondary.Clock) *QueueServiceImpl {
	return &QueueServiceImpl{
		store: store,
		audit: audit,
		clock: clock,
		newID: uuid.NewString,
	}
}

// Append accepts one scanned value and persists it immediately.
func (s *QueueServiceImpl) Append(ctx context.Context, value string) (*models.ScanEvent, error) {
	events, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	event := models.ScanEvent{
		ID:        s.newID(),
		Value:     value,
		ScannedAt: s.clock.Now(),
	}
	events = append(events, event)

	if err := s.persist(ctx, events); err != nil {
		return nil, err
	}

	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryScan, fmt.Sprintf("barcode captured: %s", value))
	return &event, nil
}

// List returns all stored events in insertion order.
func (s *QueueServiceImpl) List(ctx context.Context) ([]models.ScanEvent, error) {
	return s.load(ctx)
}

// RemoveByID removes exactly one event; absent ids are a silent no-op.
func (s *QueueServiceImpl) RemoveByID(ctx context.Context, id string) error {
	events, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i, e := range events {
		if e.ID == id {
			removed := e
			events = append(events[:i], events[i+1:]...)
			if err := s.persist(ctx, events); err != nil {
				return err
			}
			s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, fmt.Sprintf("event removed: %s", removed.Value))
			return nil
		}
	}

	return nil
}

// ClearAll removes every event.
func (s *QueueServiceImpl) ClearAll(ctx context.Context) error {
	if err := s.store.Delete(ctx, secondary.StateKeyScanEvents); err != nil {
		return fmt.Errorf("failed to clear scan events: %w", err)
	}
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryOperation, "scan queue cleared")
	return nil
}

// Count returns the number of stored events.
func (s *QueueServiceImpl) Count(ctx context.Context) (int, error) {
	events, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(events), nil
}

// load materializes the full event sequence from durable storage. An
// absent key reads as empty; malformed content also reads as empty so a
// corrupt store can never poison a workflow with unparseable history.
func (s *QueueServiceImpl) load(ctx context.Context) ([]models.ScanEvent, error) {
	raw, ok, err := s.store.Get(ctx, secondary.StateKeyScanEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan events: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var events []models.ScanEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		s.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryOperation, "stored scan events unreadable, treating as empty")
		return nil, nil
	}
	return events, nil
}

func (s *QueueServiceImpl) persist(ctx context.Context, events []models.ScanEvent) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to serialize scan events: %w", err)
	}
	if err := s.store.Put(ctx, secondary.StateKeyScanEvents, raw); err != nil {
		return fmt.Errorf("failed to persist scan events: %w", err)
	}
	return nil
}
