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

// ShippingCmd returns the shipping command
func ShippingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shipping",
		Short: "Run an outbound shipping session",
		Long: `Tally outbound items. Repeat scans of the same code fold into one
counted entry.

Commands inside the session:
  !list   show tallied items
  !clear  drop all session data
  !done   complete the session
  !quit   abandon the session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			session := app.NewShippingSession(wire.Clock(), wire.AuditWriter())
			fmt.Println("Scan outbound items:")
			return runShipping(ctx, session, os.Stdin, os.Stdout)
		},
	}
}

func runShipping(ctx context.Context, session *app.ShippingSession, in io.Reader, out io.Writer) error {
	return scanLines(in, func(line string) bool {
		switch line {
		case cmdQuit:
			return false
		case cmdList:
			printShippingItems(session, out)
			return true
		case cmdClear:
			session.Clear(ctx)
			fmt.Fprintln(out, "Session cleared.")
			return true
		case cmdDone:
			totals, err := session.Complete(ctx)
			if errors.Is(err, app.ErrSessionEmpty) {
				fmt.Fprintf(out, "%s nothing scanned yet\n", color.New(color.FgRed).Sprint("✗"))
				return true
			}
			fmt.Fprintf(out, "%s shipping complete: %d items, total %d\n",
				color.New(color.FgGreen).Sprint("✓"), totals.DistinctCount, totals.TotalQuantity)
			return false
		}

		item := session.Scan(ctx, line)
		fmt.Fprintf(out, "%s %s x%d\n", color.New(color.FgGreen).Sprint("✓"), item.Code, item.Quantity)
		return true
	})
}

func printShippingItems(session *app.ShippingSession, out io.Writer) {
	items := session.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items tallied.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tQTY")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%d\n", item.Code, item.Quantity)
	}
	w.Flush()

	totals := session.Totals()
	fmt.Fprintf(out, "%d items, total %d\n", totals.DistinctCount, totals.TotalQuantity)
}
