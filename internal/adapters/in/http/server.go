// Package http exposes the dispatch commands and queries as a JSON API on echo.
//
// Every route lives under /api/v1. Handlers return errors instead of writing
// failure responses themselves; ErrorHandler turns them into status codes.
package http

import (
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// APIPrefix is the path prefix of every route.
	APIPrefix = "/api/v1"

	backupFilename = "backup-motoboy-manager.json"
	exportFilename = "historico.csv"
	maxBodySize    = "10M"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCourier  commands.CreateCourierCommandHandler
	UpdateCourier  commands.UpdateCourierCommandHandler
	RemoveCourier  commands.RemoveCourierCommandHandler
	AddOrders      commands.AddOrdersCommandHandler
	RemoveOrder    commands.RemoveOrderCommandHandler
	FinishOrders   commands.FinishOrdersCommandHandler
	SetDayFilter   commands.SetDayFilterCommandHandler
	ImportSnapshot commands.ImportSnapshotCommandHandler

	GetCouriers   queries.GetCouriersQueryHandler
	GetBoard      queries.GetBoardQueryHandler
	GetHistory    queries.GetHistoryQueryHandler
	GetStats      queries.GetStatsQueryHandler
	ExportHistory queries.ExportHistoryQueryHandler
	GetSnapshot   queries.GetSnapshotQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h           Handlers
	entitlement kernel.Entitlement
	logger      *slog.Logger
}

// NewServer creates a server. The entitlement gates the backup routes; the
// other premium routes are gated by their query handlers.
func NewServer(h Handlers, entitlement kernel.Entitlement, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:           h,
		entitlement: entitlement,
		logger:      logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with the middleware chain and every route.
//
// Middleware order: RequestID, request logging, Recover, body limit.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(s.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))

	s.Register(e.Group(APIPrefix))
	return e
}

// Register mounts the routes on g.
func (s *Server) Register(g *echo.Group) {
	g.GET("/health", s.Health)

	g.GET("/couriers", s.GetCouriers)
	g.POST("/couriers", s.CreateCourier)
	g.PATCH("/couriers/:id", s.UpdateCourier)
	g.DELETE("/couriers/:id", s.RemoveCourier)

	g.GET("/board", s.GetBoard)
	g.PUT("/day-filter", s.SetDayFilter)

	g.POST("/orders/batch", s.AddOrders)
	g.DELETE("/orders/:id", s.RemoveOrder)
	g.POST("/orders/finish", s.FinishOrders)

	g.GET("/history", s.GetHistory)
	g.GET("/stats", s.GetStats)
	g.GET("/export.csv", s.ExportCSV)
	g.GET("/backup", s.DownloadBackup)
	g.POST("/backup", s.RestoreBackup)
}

// Health handles GET /api/v1/health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
