package app

import (
	"context"
	"sync"
	"time"

	"github.com/example/htscan/internal/models"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockStateStore implements secondary.StateStore backed by a map, with
// injectable errors per operation.
type mockStateStore struct {
	mu        sync.Mutex
	data      map[string][]byte
	putCalls  int
	getErr    error
	putErr    error
	deleteErr error
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{data: make(map[string][]byte)}
}

func (m *mockStateStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *mockStateStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.putCalls++
	m.data[key] = value
	return nil
}

func (m *mockStateStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.data, key)
	return nil
}

// auditEntry captures one audit write for assertions.
type auditEntry struct {
	Level    string
	Category string
	Message  string
}

// recordingAudit implements secondary.AuditWriter and records entries.
type recordingAudit struct {
	entries []auditEntry
}

func (a *recordingAudit) Write(ctx context.Context, level, category, message string) {
	a.entries = append(a.entries, auditEntry{Level: level, Category: category, Message: message})
}

// fakeClock implements secondary.Clock, ticking one second per call so
// successive timestamps are distinct but deterministic.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(time.Second)
	return now
}

// mockCollector implements secondary.Collector.
type mockCollector struct {
	probeErr   error
	probeCalls int
	pushErr    error
	pushed     []models.ScanBatch
	master     *models.MasterList
	fetchErr   error
	fetchCalls int
}

func (m *mockCollector) Probe(ctx context.Context) error {
	m.probeCalls++
	return m.probeErr
}

func (m *mockCollector) Push(ctx context.Context, batch models.ScanBatch) error {
	if m.pushErr != nil {
		return m.pushErr
	}
	m.pushed = append(m.pushed, batch)
	return nil
}

func (m *mockCollector) FetchMaster(ctx context.Context) (*models.MasterList, error) {
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.master, nil
}

// mockSignal implements secondary.NetworkSignal.
type mockSignal struct {
	online bool
}

func (m *mockSignal) Online() bool {
	return m.online
}
