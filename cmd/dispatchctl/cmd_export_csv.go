package main

import (
	"bytes"

	"dispatch/internal/adapters/out/csvexport"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func newExportCSVCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-csv <file>",
		Short: "Export the order history of a backup as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportCSV(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func runExportCSV(cmd *cobra.Command, path, output string) error {
	store, _, err := openBackup(cmd.ErrOrStderr(), path)
	if err != nil {
		return err
	}

	handler := queries.NewExportHistoryQueryHandler(store, kernel.EntitlementPremium)
	rows, err := handler.Handle(cmd.Context(), queries.NewExportHistoryQuery())
	if err != nil {
		return err
	}

	if output == "" {
		return csvexport.Write(cmd.OutOrStdout(), rows)
	}

	var buf bytes.Buffer
	if err := csvexport.Write(&buf, rows); err != nil {
		return err
	}
	return atomic.WriteFile(output, &buf)
}
