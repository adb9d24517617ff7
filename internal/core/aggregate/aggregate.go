// Package aggregate contains the pure fold logic for scan accumulation.
// Engines own only their in-memory state: no storage, no network, no
// side effects beyond the collection they maintain. Callers are expected
// to hand in non-empty, trimmed codes; codes compare by exact string
// equality with no normalization.
package aggregate

import "time"

// Item is one counted entry: a distinct code with the number of times it
// has been scanned in the active session.
type Item struct {
	Code           string
	Quantity       int
	FirstScannedAt time.Time
}

// Totals summarizes a counter session.
type Totals struct {
	DistinctCount int
	TotalQuantity int
}

// Counter folds repeated scans of the same code into a single counted
// entry, preserving first-scan insertion order for display.
type Counter struct {
	order []string
	items map[string]*Item
	now   func() time.Time
}

// NewCounter creates an empty counter. now supplies first-scan timestamps.
func NewCounter(now func() time.Time) *Counter {
	return &Counter{
		items: make(map[string]*Item),
		now:   now,
	}
}

// Ingest folds one scanned code into the counter. A new code creates an
// entry with quantity 1; a repeat scan increments the existing entry.
// Returns the created or updated item.
func (c *Counter) Ingest(code string) *Item {
	if item, ok := c.items[code]; ok {
		item.Quantity++
		return item
	}

	item := &Item{
		Code:           code,
		Quantity:       1,
		FirstScannedAt: c.now(),
	}
	c.items[code] = item
	c.order = append(c.order, code)
	return item
}

// Items returns all entries in first-scan order.
func (c *Counter) Items() []*Item {
	items := make([]*Item, len(c.order))
	for i, code := range c.order {
		items[i] = c.items[code]
	}
	return items
}

// Totals returns the distinct-code count and the sum of all quantities.
func (c *Counter) Totals() Totals {
	t := Totals{DistinctCount: len(c.order)}
	for _, item := range c.items {
		t.TotalQuantity += item.Quantity
	}
	return t
}

// Clear resets the counter to empty.
func (c *Counter) Clear() {
	c.order = nil
	c.items = make(map[string]*Item)
}

// Len returns the number of distinct codes.
func (c *Counter) Len() int {
	return len(c.order)
}
