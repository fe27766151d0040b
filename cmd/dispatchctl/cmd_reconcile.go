package main

import (
	"fmt"

	"dispatch/internal/core/domain/services"

	"github.com/spf13/cobra"
)

func newReconcileCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reconcile <file>",
		Short: "Drop orphaned orders and clear dangling courier references",
		Long: `Runs the hydration reconciliation over a backup file: removes the legacy
ORPHAN courier, deletes active orders whose courier is missing, and clears
the courier of history records whose courier is missing. The file is
rewritten atomically unless --dry-run is given or nothing changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing the file")
	return cmd
}

func runReconcile(cmd *cobra.Command, path string, dryRun bool) error {
	out := cmd.OutOrStdout()

	store, state, err := openBackup(cmd.ErrOrStderr(), path)
	if err != nil {
		return err
	}

	report := services.NewMigrationReconciler().Reconcile(state)
	fmt.Fprintf(out, "removed sentinel couriers: %d\n", report.RemovedSentinelCouriers)
	fmt.Fprintf(out, "removed active orders:     %d\n", report.RemovedActive)
	fmt.Fprintf(out, "cleared history couriers:  %d\n", report.ClearedHistory)

	switch {
	case !report.Changed():
		fmt.Fprintln(out, "nothing to do")
		return nil
	case dryRun:
		fmt.Fprintln(out, "dry run: file not written")
		return nil
	}

	if err := store.Write(state); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", store.Path())
	return nil
}
