package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/htscan/internal/cli"
	"github.com/example/htscan/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "htscan",
		Short:   "htscan - offline barcode capture for handheld terminals",
		Version: version.String(),
		Long: `htscan captures barcode scans into a durable on-device queue, runs
stocktake, shipping, and delivery-check workflows, and syncs with a
collector server when connectivity allows.`,
	}

	// Capture and queue management
	rootCmd.AddCommand(cli.CaptureCmd())
	rootCmd.AddCommand(cli.DataCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	// Collector sync
	rootCmd.AddCommand(cli.ProbeCmd())
	rootCmd.AddCommand(cli.SendCmd())
	rootCmd.AddCommand(cli.ReceiveCmd())

	// Scan workflows
	rootCmd.AddCommand(cli.InventoryCmd())
	rootCmd.AddCommand(cli.ShippingCmd())
	rootCmd.AddCommand(cli.MasterCmd())
	rootCmd.AddCommand(cli.CheckCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
