package http

import (
	"bytes"
	"io"
	"net/http"

	"dispatch/internal/adapters/out/csvexport"
	"dispatch/internal/adapters/out/snapshot"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetHistory handles GET /api/v1/history?q=.
func (s *Server) GetHistory(c echo.Context) error {
	items, err := s.h.GetHistory.Handle(c.Request().Context(), queries.NewGetHistoryQuery(c.QueryParam("q")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromHistory(items))
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(c echo.Context) error {
	stats, err := s.h.GetStats.Handle(c.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromStats(stats))
}

// ExportCSV handles GET /api/v1/export.csv.
func (s *Server) ExportCSV(c echo.Context) error {
	rows, err := s.h.ExportHistory.Handle(c.Request().Context(), queries.NewExportHistoryQuery())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := csvexport.Write(&buf, rows); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Blob(http.StatusOK, csvexport.ContentType, buf.Bytes())
}

// DownloadBackup handles GET /api/v1/backup with the full snapshot document.
func (s *Server) DownloadBackup(c echo.Context) error {
	if !s.entitlement.Premium() {
		return queries.ErrLocked
	}

	state, err := s.h.GetSnapshot.Handle(c.Request().Context(), queries.NewGetSnapshotQuery())
	if err != nil {
		return err
	}

	data, err := snapshot.EncodeIndent(state)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+backupFilename+`"`)
	return c.JSONBlob(http.StatusOK, data)
}

// RestoreBackup handles POST /api/v1/backup. The body is a snapshot document;
// it replaces the stored state after reconciliation.
func (s *Server) RestoreBackup(c echo.Context) error {
	if !s.entitlement.Premium() {
		return queries.ErrLocked
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest("cannot read request body")
	}

	state, decoded, err := snapshot.Decode(data)
	if err != nil {
		return err
	}

	cmd, err := commands.NewImportSnapshotCommand(state)
	if err != nil {
		return err
	}

	reconciled, err := s.h.ImportSnapshot.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.InfoContext(c.Request().Context(), "backup restored",
		"removed_active", reconciled.RemovedActive,
		"cleared_history", reconciled.ClearedHistory,
		"skipped_couriers", decoded.SkippedCouriers,
		"skipped_active", decoded.SkippedActive,
		"skipped_history", decoded.SkippedHistory,
	)

	return c.JSON(http.StatusOK, fromRestore(reconciled, decoded))
}
