package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/htscan/internal/wire"
)

// DataCmd returns the data command
func DataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect and manage the durable scan queue",
	}

	cmd.AddCommand(dataListCmd())
	cmd.AddCommand(dataDeleteCmd())
	cmd.AddCommand(dataClearCmd())

	return cmd
}

func dataListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued scan events in capture order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DataAdapter().List(NewContext())
		},
	}
}

func dataDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one queued event by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DataAdapter().Remove(NewContext(), args[0])
		},
	}
}

func dataClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every queued event",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("refusing to clear the queue without --yes")
			}
			return wire.DataAdapter().Clear(NewContext())
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm deletion of all queued events")
	return cmd
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue badge count and collector endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Cfg()
			fmt.Printf("Collector: %s%s\n", cfg.Collector.BaseURL, cfg.Collector.ScannedDataPath)
			return wire.DataAdapter().Status(NewContext())
		},
	}
}
