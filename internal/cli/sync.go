package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/htscan/internal/wire"
)

// ProbeCmd returns the probe command
func ProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check collector reachability",
		Long: `Check the coarse connectivity signal, then probe the collector
endpoint with a bounded timeout. No data is transmitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SyncAdapter().Probe(NewContext())
		},
	}
}

// SendCmd returns the send command
func SendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Transmit the queued scan events to the collector",
		Long: `Send the whole queue in one request. The protocol is all-or-nothing:
on any failure the queue is kept intact for retry. Even on success the
queue is only cleared when --clear is given; otherwise run
'htscan data clear' once the server-side import is confirmed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clearAfter, _ := cmd.Flags().GetBool("clear")
			return wire.SyncAdapter().Send(NewContext(), clearAfter)
		},
	}
	cmd.Flags().Bool("clear", false, "Clear the queue after a successful send")
	return cmd
}

// ReceiveCmd returns the receive command
func ReceiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receive",
		Short: "Download the check master from the collector",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SyncAdapter().Receive(NewContext())
		},
	}
}
