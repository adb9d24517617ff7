package cli

import (
	"bufio"
	"io"
	"strings"
)

// Loop control words. Scan values never start with '!' in practice, so
// the interactive loops reserve that prefix for commands.
const (
	cmdQuit  = "!quit"
	cmdDone  = "!done"
	cmdClear = "!clear"
	cmdList  = "!list"
	cmdReset = "!reset"
	cmdLoc   = "!loc"
	cmdSave  = "!save"
)

// scanLines reads trimmed, non-empty lines from in and hands each to fn.
// Empty and whitespace-only input is dropped here, before any engine sees
// it. fn returns false to stop the loop; scan input is consumed strictly
// in arrival order, one line fully processed before the next is read.
func scanLines(in io.Reader, fn func(line string) bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !fn(line) {
			return nil
		}
	}
	return scanner.Err()
}
