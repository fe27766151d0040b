package main

import (
	"fmt"
	"text/tabwriter"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print finished orders per courier and per payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0])
		},
	}
}

// runStats reads the backup through the stats query. Having the file means
// having the data, so the query runs unlocked.
func runStats(cmd *cobra.Command, path string) error {
	store, _, err := openBackup(cmd.ErrOrStderr(), path)
	if err != nil {
		return err
	}

	handler := queries.NewGetStatsQueryHandler(store, kernel.EntitlementPremium)
	stats, err := handler.Handle(cmd.Context(), queries.NewGetStatsQuery())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "finished\t%d\n\n", stats.Total)

	fmt.Fprintln(tw, "COURIER\tFINISHED")
	for _, c := range stats.ByCourier {
		fmt.Fprintf(tw, "%s\t%d\n", c.CourierName, c.Finished)
	}

	fmt.Fprintln(tw, "\nPAYMENT\tFINISHED")
	for _, p := range stats.ByPay {
		fmt.Fprintf(tw, "%s\t%d\n", p.Pay, p.Finished)
	}

	return tw.Flush()
}
