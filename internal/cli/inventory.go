package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/htscan/internal/app"
	"github.com/example/htscan/internal/wire"
)

// InventoryCmd returns the inventory command
func InventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Run a stocktake session (location, then items)",
		Long: `Count stock at one location. The first scan sets the location; every
following scan counts an item, with repeat scans of the same code
folded into one quantity.

Commands inside the session:
  !loc    scan a new location next
  !list   show counted items
  !clear  drop all session data
  !done   complete the session
  !quit   abandon the session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			session := app.NewInventorySession(wire.Clock(), wire.AuditWriter())
			fmt.Println("Scan a location to begin:")
			return runInventory(ctx, session, os.Stdin, os.Stdout)
		},
	}
}

func runInventory(ctx context.Context, session *app.InventorySession, in io.Reader, out io.Writer) error {
	return scanLines(in, func(line string) bool {
		switch line {
		case cmdQuit:
			return false
		case cmdLoc:
			session.EnterLocationMode()
			fmt.Fprintln(out, "Scan a location:")
			return true
		case cmdList:
			printInventoryItems(session, out)
			return true
		case cmdClear:
			session.Clear(ctx)
			fmt.Fprintln(out, "Session cleared. Scan a location to begin:")
			return true
		case cmdDone:
			summary, err := session.Complete(ctx)
			if errors.Is(err, app.ErrSessionEmpty) {
				fmt.Fprintf(out, "%s nothing scanned yet\n", color.New(color.FgRed).Sprint("✗"))
				return true
			}
			fmt.Fprintf(out, "%s stocktake complete: location %s, %d items, total %d\n",
				color.New(color.FgGreen).Sprint("✓"),
				summary.Location, summary.Totals.DistinctCount, summary.Totals.TotalQuantity)
			return false
		}

		scan, err := session.Scan(ctx, line)
		if errors.Is(err, app.ErrNoLocation) {
			fmt.Fprintf(out, "%s scan a location first\n", color.New(color.FgRed).Sprint("✗"))
			return true
		}
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", color.New(color.FgRed).Sprint("✗"), err)
			return true
		}

		if scan.LocationSet {
			fmt.Fprintf(out, "%s location: %s\n", color.New(color.FgGreen).Sprint("✓"), scan.Location)
		} else {
			fmt.Fprintf(out, "%s %s x%d\n", color.New(color.FgGreen).Sprint("✓"), scan.Item.Code, scan.Item.Quantity)
		}
		return true
	})
}

func printInventoryItems(session *app.InventorySession, out io.Writer) {
	items := session.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items counted.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tQTY")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%d\n", item.Code, item.Quantity)
	}
	w.Flush()

	totals := session.Totals()
	fmt.Fprintf(out, "location %s: %d items, total %d\n", session.Location(), totals.DistinctCount, totals.TotalQuantity)
}
