package main

import (
	"fmt"
	"io"

	"dispatch/internal/adapters/out/backupfile"
	"dispatch/internal/adapters/out/snapshot"
	"dispatch/internal/core/domain/model/dispatch"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dispatchctl",
		Short:         "Maintenance tools for dispatch backup files",
		SilenceUsage: true,
	}

	root.AddCommand(newReconcileCmd(), newStatsCmd(), newExportCSVCmd())
	return root
}

// openBackup reads the backup file at path and warns on w about anything the
// lenient decoder dropped.
func openBackup(w io.Writer, path string) (*backupfile.Store, *dispatch.State, error) {
	store, err := backupfile.NewStore(path)
	if err != nil {
		return nil, nil, err
	}

	state, report, err := store.Read()
	if err != nil {
		return nil, nil, err
	}
	if !report.Clean() {
		printDecodeReport(w, report)
	}
	return store, state, nil
}

func printDecodeReport(w io.Writer, r snapshot.Report) {
	fmt.Fprintf(w, "warning: backup decoded with losses: skipped %d couriers, %d active, %d history",
		r.SkippedCouriers, r.SkippedActive, r.SkippedHistory)
	if len(r.Defaulted) > 0 {
		fmt.Fprintf(w, "; defaulted sections %v", r.Defaulted)
	}
	fmt.Fprintln(w)
}
