package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/example/htscan/internal/models"
)

// mockQueueService implements primary.QueueService for adapter tests.
type mockQueueService struct {
	events     []models.ScanEvent
	cleared    bool
	clearCalls int
}

func (m *mockQueueService) Append(ctx context.Context, value string) (*models.ScanEvent, error) {
	event := models.ScanEvent{
		ID:        "evt-001",
		Value:     value,
		ScannedAt: time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
	}
	m.events = append(m.events, event)
	return &event, nil
}

func (m *mockQueueService) List(ctx context.Context) ([]models.ScanEvent, error) {
	return m.events, nil
}

func (m *mockQueueService) RemoveByID(ctx context.Context, id string) error {
	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockQueueService) ClearAll(ctx context.Context) error {
	m.events = nil
	m.cleared = true
	m.clearCalls++
	return nil
}

func (m *mockQueueService) Count(ctx context.Context) (int, error) {
	return len(m.events), nil
}

// mockSyncService implements primary.SyncService for adapter tests.
type mockSyncService struct {
	reachable  bool
	sendResult *models.SyncResult
	sent       [][]models.ScanEvent
	recvResult *models.ReceiveResult
}

func (m *mockSyncService) ProbeReachability(ctx context.Context) bool {
	return m.reachable
}

func (m *mockSyncService) Send(ctx context.Context, events []models.ScanEvent) *models.SyncResult {
	m.sent = append(m.sent, events)
	return m.sendResult
}

func (m *mockSyncService) ReceiveMaster(ctx context.Context) *models.ReceiveResult {
	return m.recvResult
}

func TestDataAdapterAppendShowsCount(t *testing.T) {
	queue := &mockQueueService{}
	var buf bytes.Buffer
	adapter := NewDataAdapter(queue, &buf)

	if err := adapter.Append(context.Background(), "4901234567890"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "4901234567890") {
		t.Errorf("output missing value: %q", out)
	}
	if !strings.Contains(out, "(1 queued)") {
		t.Errorf("output missing queue count: %q", out)
	}
}

func TestDataAdapterListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewDataAdapter(&mockQueueService{}, &buf)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No queued data") {
		t.Errorf("output = %q, want empty-queue message", buf.String())
	}
}

func TestDataAdapterListShowsRecords(t *testing.T) {
	queue := &mockQueueService{}
	queue.Append(context.Background(), "4901234567890")
	var buf bytes.Buffer
	adapter := NewDataAdapter(queue, &buf)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "4901234567890") {
		t.Errorf("output missing value: %q", out)
	}
	if !strings.Contains(out, "1 records queued") {
		t.Errorf("output missing total: %q", out)
	}
}

func TestSyncAdapterSendFailureKeepsQueue(t *testing.T) {
	queue := &mockQueueService{}
	queue.Append(context.Background(), "A")
	sync := &mockSyncService{sendResult: &models.SyncResult{Success: false, Message: "server rejected batch: status 500"}}
	var buf bytes.Buffer
	adapter := NewSyncAdapter(sync, queue, &buf)

	if err := adapter.Send(context.Background(), true); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if queue.cleared {
		t.Error("queue cleared after failed send, want kept for retry")
	}
	if !strings.Contains(buf.String(), "500") {
		t.Errorf("output missing status: %q", buf.String())
	}
}

func TestSyncAdapterSendSuccessClearsWhenAsked(t *testing.T) {
	queue := &mockQueueService{}
	queue.Append(context.Background(), "A")
	sync := &mockSyncService{sendResult: &models.SyncResult{Success: true, Message: "sent 1 records", SentCount: 1}}
	var buf bytes.Buffer
	adapter := NewSyncAdapter(sync, queue, &buf)

	if err := adapter.Send(context.Background(), true); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !queue.cleared {
		t.Error("queue not cleared after successful send with clearAfter")
	}
}

func TestSyncAdapterSendSuccessKeepsQueueByDefault(t *testing.T) {
	queue := &mockQueueService{}
	queue.Append(context.Background(), "A")
	sync := &mockSyncService{sendResult: &models.SyncResult{Success: true, Message: "sent 1 records", SentCount: 1}}
	var buf bytes.Buffer
	adapter := NewSyncAdapter(sync, queue, &buf)

	if err := adapter.Send(context.Background(), false); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if queue.cleared {
		t.Error("queue cleared without clearAfter, want explicit caller-driven clear")
	}
}

func TestSyncAdapterSendEmptyQueue(t *testing.T) {
	sync := &mockSyncService{sendResult: &models.SyncResult{Success: true}}
	var buf bytes.Buffer
	adapter := NewSyncAdapter(sync, &mockQueueService{}, &buf)

	if err := adapter.Send(context.Background(), true); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(sync.sent) != 0 {
		t.Error("send attempted with empty queue")
	}
	if !strings.Contains(buf.String(), "No queued data") {
		t.Errorf("output = %q, want empty-queue message", buf.String())
	}
}

func TestSyncAdapterReceive(t *testing.T) {
	sync := &mockSyncService{recvResult: &models.ReceiveResult{
		Success:   true,
		Message:   "received 150 master records",
		Count:     150,
		UpdatedAt: time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC),
	}}
	var buf bytes.Buffer
	adapter := NewSyncAdapter(sync, &mockQueueService{}, &buf)

	if err := adapter.Receive(context.Background()); err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if !strings.Contains(buf.String(), "150") {
		t.Errorf("output missing count: %q", buf.String())
	}
}
