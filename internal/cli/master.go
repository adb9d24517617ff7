package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/htscan/internal/app"
	"github.com/example/htscan/internal/wire"
)

// MasterCmd returns the master command
func MasterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "master",
		Short: "Build a check master on the device",
		Long: `Register expected codes by scanning them. Each code appears at most
once; repeat scans are flagged and ignored. !save persists the list so
delivery-check sessions can load it.

Commands inside the session:
  !list   show registered codes
  !clear  drop all registered codes
  !save   persist the master and finish
  !quit   abandon the session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			builder := app.NewMasterBuilder(wire.Clock(), wire.MasterService(), wire.AuditWriter())
			fmt.Println("Scan codes to register (!save to persist):")
			return runMaster(ctx, builder, os.Stdin, os.Stdout)
		},
	}
}

func runMaster(ctx context.Context, builder *app.MasterBuilder, in io.Reader, out io.Writer) error {
	var loopErr error
	err := scanLines(in, func(line string) bool {
		switch line {
		case cmdQuit:
			return false
		case cmdList:
			printMasterCodes(builder, out)
			return true
		case cmdClear:
			builder.Clear(ctx)
			fmt.Fprintln(out, "Master cleared.")
			return true
		case cmdSave:
			count, err := builder.Save(ctx)
			if errors.Is(err, app.ErrMasterEmpty) {
				fmt.Fprintf(out, "%s nothing registered yet\n", color.New(color.FgRed).Sprint("✗"))
				return true
			}
			if err != nil {
				loopErr = err
				return false
			}
			fmt.Fprintf(out, "%s master saved: %d entries\n", color.New(color.FgGreen).Sprint("✓"), count)
			return false
		}

		if !builder.Scan(ctx, line) {
			fmt.Fprintf(out, "%s already registered: %s\n", color.New(color.FgYellow).Sprint("!"), line)
			return true
		}
		fmt.Fprintf(out, "%s %s (%d registered)\n", color.New(color.FgGreen).Sprint("✓"), line, builder.Len())
		return true
	})
	if loopErr != nil {
		return loopErr
	}
	return err
}

func printMasterCodes(builder *app.MasterBuilder, out io.Writer) {
	codes := builder.Codes()
	if len(codes) == 0 {
		fmt.Fprintln(out, "No codes registered.")
		return
	}
	for i, code := range codes {
		fmt.Fprintf(out, "%d. %s\n", i+1, code)
	}
	fmt.Fprintf(out, "%d codes registered\n", len(codes))
}
