package cli

import (
	"strings"
	"testing"
)

func TestScanLinesTrimsAndSkipsEmpty(t *testing.T) {
	input := "  JAN-100  \n\n   \nJAN-200\n"
	var seen []string

	err := scanLines(strings.NewReader(input), func(line string) bool {
		seen = append(seen, line)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(seen), seen)
	}
	if seen[0] != "JAN-100" || seen[1] != "JAN-200" {
		t.Errorf("expected trimmed lines in order, got %v", seen)
	}
}

func TestScanLinesStopsOnFalse(t *testing.T) {
	input := "one\ntwo\nthree\n"
	var seen []string

	err := scanLines(strings.NewReader(input), func(line string) bool {
		seen = append(seen, line)
		return line != "two"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != 2 {
		t.Errorf("expected loop to stop after 'two', saw %v", seen)
	}
}

func TestScanLinesEndOfInput(t *testing.T) {
	calls := 0
	err := scanLines(strings.NewReader(""), func(line string) bool {
		calls++
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no callbacks for empty input, got %d", calls)
	}
}
