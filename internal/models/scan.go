// Package models contains domain types for htscan entities.
// Persistence lives behind the repository interfaces in ports/secondary.
package models

import "time"

// ScanEvent is one accepted barcode read. Events are immutable once created
// and owned by the event queue for their durable lifetime; workflows read
// snapshots, never mutate in place.
type ScanEvent struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	ScannedAt time.Time `json:"scannedAt"`
}

// ScanBatch is the wire payload for one send attempt. The whole batch goes
// out in a single request; there is no per-record acknowledgment.
type ScanBatch struct {
	Items  []ScanEvent `json:"items"`
	SentAt time.Time   `json:"sentAt"`
}

// MasterItem is one expected entry in a check master.
type MasterItem struct {
	Code     string `json:"code"`
	Expected int    `json:"expected"`
}

// MasterList is a check master: the expected-items list that seeds a
// delivery check session.
type MasterList struct {
	Items     []MasterItem `json:"items"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// SyncResult reports the outcome of one send attempt. It is never persisted;
// the caller consumes it to drive user feedback and decides separately
// whether to clear the queue.
type SyncResult struct {
	Success   bool
	Message   string
	SentCount int
}

// ReceiveResult reports the outcome of one check-master download.
type ReceiveResult struct {
	Success   bool
	Message   string
	Count     int
	UpdatedAt time.Time
}
