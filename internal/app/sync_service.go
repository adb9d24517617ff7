package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/htscan/internal/models"
	"github.com/example/htscan/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface. Send and receive
// outcomes are reported as data; nothing at this layer panics or retries.
type SyncServiceImpl struct {
	collector secondary.Collector
	signal    secondary.NetworkSignal
	store     secondary.StateStore
	audit     secondary.AuditWriter
	clock     secondary.Clock
}

// NewSyncService creates a SyncService with injected dependencies.
func NewSyncService(
	collector secondary.Collector,
	signal secondary.NetworkSignal,
	store secondary.StateStore,
	audit secondary.AuditWriter,
	clock secondary.Clock,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		collector: collector,
		signal:    signal,
		store:     store,
		audit:     audit,
		clock:     clock,
	}
}

// ProbeReachability checks the coarse connectivity signal, then probes the
// collector. The HTTP probe is skipped entirely while offline.
func (s *SyncServiceImpl) ProbeReachability(ctx context.Context) bool {
	if !s.signal.Online() {
		s.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryNetwork, "device is offline")
		return false
	}

	if err := s.collector.Probe(ctx); err != nil {
		s.audit.Write(ctx, secondary.AuditWarn, secondary.CategoryNetwork, "collector unreachable")
		return false
	}

	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryNetwork, "collector reachable")
	return true
}

// Send transmits the full batch plus a send timestamp in one request. The
// queue is never touched here: on success the caller decides when to
// clear, so a re-invoked Send with the same unsent batch stays idempotent
// at the queue level.
func (s *SyncServiceImpl) Send(ctx context.Context, events []models.ScanEvent) *models.SyncResult {
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryNetwork, fmt.Sprintf("sending %d records", len(events)))

	batch := models.ScanBatch{Items: events, SentAt: s.clock.Now()}
	if err := s.collector.Push(ctx, batch); err != nil {
		var serverErr *secondary.ServerError
		var msg string
		if errors.As(err, &serverErr) {
			msg = fmt.Sprintf("server rejected batch: status %d", serverErr.Status)
		} else {
			msg = "send failed: network error"
		}
		s.audit.Write(ctx, secondary.AuditError, secondary.CategoryNetwork, msg)
		return &models.SyncResult{Success: false, Message: msg}
	}

	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryNetwork, fmt.Sprintf("send complete: %d records", len(events)))
	return &models.SyncResult{
		Success:   true,
		Message:   fmt.Sprintf("sent %d records", len(events)),
		SentCount: len(events),
	}
}

// ReceiveMaster downloads the current check master and persists it under
// the check-master state key.
func (s *SyncServiceImpl) ReceiveMaster(ctx context.Context) *models.ReceiveResult {
	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryNetwork, "check master download started")

	master, err := s.collector.FetchMaster(ctx)
	if err != nil {
		var serverErr *secondary.ServerError
		var msg string
		if errors.As(err, &serverErr) {
			msg = fmt.Sprintf("server rejected request: status %d", serverErr.Status)
		} else {
			msg = "receive failed: network error"
		}
		s.audit.Write(ctx, secondary.AuditError, secondary.CategoryNetwork, msg)
		return &models.ReceiveResult{Success: false, Message: msg}
	}

	if master.UpdatedAt.IsZero() {
		master.UpdatedAt = s.clock.Now()
	}

	raw, err := json.Marshal(master)
	if err != nil {
		msg := "receive failed: could not store check master"
		s.audit.Write(ctx, secondary.AuditError, secondary.CategoryNetwork, msg)
		return &models.ReceiveResult{Success: false, Message: msg}
	}
	if err := s.store.Put(ctx, secondary.StateKeyCheckMaster, raw); err != nil {
		msg := "receive failed: could not store check master"
		s.audit.Write(ctx, secondary.AuditError, secondary.CategoryNetwork, msg)
		return &models.ReceiveResult{Success: false, Message: msg}
	}

	s.audit.Write(ctx, secondary.AuditInfo, secondary.CategoryNetwork, fmt.Sprintf("check master received: %d records", len(master.Items)))
	return &models.ReceiveResult{
		Success:   true,
		Message:   fmt.Sprintf("received %d master records", len(master.Items)),
		Count:     len(master.Items),
		UpdatedAt: master.UpdatedAt,
	}
}
