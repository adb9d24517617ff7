package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/htscan/internal/app"
	"github.com/example/htscan/internal/core/reconcile"
	"github.com/example/htscan/internal/wire"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Reconcile delivery scans against the check master",
		Long: `Scan delivered items and reconcile each against the stored check
master. Codes not in the master are flagged and create nothing; scans
past the expected quantity are flagged as over and keep counting.

Commands inside the session:
  !list   show all records with progress
  !reset  zero the scanned counts
  !done   finish with a summary
  !quit   abandon the session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			master, err := wire.MasterService().LoadMaster(ctx)
			if err != nil {
				return err
			}
			if len(master.Items) == 0 {
				fmt.Println("No check master stored. Run 'htscan receive' or 'htscan master' first.")
				return nil
			}

			session := app.NewCheckSession(master, wire.AuditWriter())
			fmt.Printf("Checking against %d expected items:\n", session.Len())
			return runCheck(ctx, session, os.Stdin, os.Stdout)
		},
	}
}

func runCheck(ctx context.Context, session *app.CheckSession, in io.Reader, out io.Writer) error {
	return scanLines(in, func(line string) bool {
		switch line {
		case cmdQuit:
			return false
		case cmdList:
			printCheckRecords(session, out)
			return true
		case cmdReset:
			session.Reset(ctx)
			fmt.Fprintln(out, "Counts reset.")
			return true
		case cmdDone:
			printCheckSummary(session, out)
			return false
		}

		outcome := session.Scan(ctx, line)
		switch {
		case !outcome.Registered:
			fmt.Fprintf(out, "%s not in master: %s\n", color.New(color.FgRed).Sprint("✗"), line)
		case outcome.Status == reconcile.StatusOver:
			fmt.Fprintf(out, "%s over: %s %d/%d\n", color.New(color.FgYellow).Sprint("!"), line, outcome.Scanned, outcome.Expected)
		case outcome.Status == reconcile.StatusSatisfied:
			fmt.Fprintf(out, "%s %s %d/%d complete\n", color.New(color.FgGreen).Sprint("✓"), line, outcome.Scanned, outcome.Expected)
		default:
			fmt.Fprintf(out, "%s %d/%d\n", line, outcome.Scanned, outcome.Expected)
		}
		return true
	})
}

func printCheckRecords(session *app.CheckSession, out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tSCANNED\tEXPECTED\tSTATUS")
	for _, rec := range session.Records() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", rec.Code, rec.Scanned, rec.Expected, rec.Status())
	}
	w.Flush()
}

func printCheckSummary(session *app.CheckSession, out io.Writer) {
	summary := session.Summary()
	if summary.Pending == 0 && summary.Over == 0 {
		fmt.Fprintf(out, "%s all %d items satisfied\n", color.New(color.FgGreen).Sprint("✓"), summary.Satisfied)
		return
	}
	fmt.Fprintf(out, "satisfied %d, over %d, pending %d\n", summary.Satisfied, summary.Over, summary.Pending)
}
