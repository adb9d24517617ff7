package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/htscan/internal/adapters/cli"
	"github.com/example/htscan/internal/wire"
)

// CaptureCmd returns the capture command
func CaptureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture",
		Short: "Capture barcodes into the durable queue",
		Long: `Read barcode scans from stdin and append each to the durable queue.

Every accepted scan is persisted immediately and survives until it is
sent to the collector and explicitly cleared. Repeat scans of the same
code are stored as independent events.

Type !quit (or close input) to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			fmt.Println("Scan barcodes (!quit to stop):")
			return runCapture(ctx, wire.DataAdapter(), os.Stdin)
		},
	}
}

// runCapture drives the capture loop. Split out so tests can feed input.
func runCapture(ctx context.Context, adapter *cliadapter.DataAdapter, in io.Reader) error {
	var loopErr error
	err := scanLines(in, func(line string) bool {
		if line == cmdQuit {
			return false
		}
		if err := adapter.Append(ctx, line); err != nil {
			loopErr = err
			return false
		}
		return true
	})
	if loopErr != nil {
		return loopErr
	}
	return err
}
