// Package reconcile contains the pure matching logic for delivery checks:
// classifying each expected record as pending, satisfied, or over-scanned
// based on counts. Status is always recomputed from the counts, never
// stored, so it cannot drift.
package reconcile

// Status classifies one expected record against its scanned count.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSatisfied Status = "satisfied"
	StatusOver      Status = "over"
)

// ExpectedItem is one entry of the expected-items list supplied at session
// start.
type ExpectedItem struct {
	Code     string
	Expected int
}

// Record pairs an expected entry with its running scanned count. Expected
// is immutable for the session; Scanned only moves through RecordScan and
// Reset.
type Record struct {
	Code     string
	Expected int
	Scanned  int
}

// Status derives the record's classification from its counts.
func (r Record) Status() Status {
	switch {
	case r.Scanned < r.Expected:
		return StatusPending
	case r.Scanned == r.Expected:
		return StatusSatisfied
	default:
		return StatusOver
	}
}

// Outcome reports the effect of one scan. Registered is false when the
// code has no expected record; in that case no record was created or
// mutated and the count fields are zero.
type Outcome struct {
	Code       string
	Registered bool
	Scanned    int
	Expected   int
	Status     Status
}

// Summary counts records by current status. The three counts always sum to
// the total number of expected records.
type Summary struct {
	Satisfied int
	Over      int
	Pending   int
}

// Matcher classifies scanned codes against an expected-items list. The
// list is fixed at construction; display order follows the original list
// order.
type Matcher struct {
	order []*Record
	index map[string]*Record
}

// NewMatcher builds a matcher from the expected list. Duplicate codes keep
// the first occurrence.
func NewMatcher(expected []ExpectedItem) *Matcher {
	m := &Matcher{index: make(map[string]*Record, len(expected))}
	for _, e := range expected {
		if _, ok := m.index[e.Code]; ok {
			continue
		}
		rec := &Record{Code: e.Code, Expected: e.Expected}
		m.order = append(m.order, rec)
		m.index[e.Code] = rec
	}
	return m
}

// RecordScan folds one scanned code into the matcher. An unregistered code
// creates nothing and mutates nothing. Over-scanning is not clamped:
// Scanned may exceed Expected indefinitely.
func (m *Matcher) RecordScan(code string) Outcome {
	rec, ok := m.index[code]
	if !ok {
		return Outcome{Code: code, Registered: false}
	}

	rec.Scanned++
	return Outcome{
		Code:       code,
		Registered: true,
		Scanned:    rec.Scanned,
		Expected:   rec.Expected,
		Status:     rec.Status(),
	}
}

// Reset sets every record's scanned count back to 0, leaving the expected
// list untouched.
func (m *Matcher) Reset() {
	for _, rec := range m.order {
		rec.Scanned = 0
	}
}

// Records returns snapshots of all records in original list order.
func (m *Matcher) Records() []Record {
	records := make([]Record, len(m.order))
	for i, rec := range m.order {
		records[i] = *rec
	}
	return records
}

// Summary counts records by current status.
func (m *Matcher) Summary() Summary {
	var s Summary
	for _, rec := range m.order {
		switch rec.Status() {
		case StatusSatisfied:
			s.Satisfied++
		case StatusOver:
			s.Over++
		default:
			s.Pending++
		}
	}
	return s
}

// Len returns the number of expected records.
func (m *Matcher) Len() int {
	return len(m.order)
}
