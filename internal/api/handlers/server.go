// Package handlers implements the HTTP handlers for the ITAM API.
//
// Handlers stay thin: they bind and validate request shapes, extract the
// acting user from the request context, and delegate to the service layer.
// Service errors are pushed through c.Error() and rendered by the
// ErrorHandler middleware.
package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/internal/api/middleware"
	"fincatech.io/itam/internal/config"
	"fincatech.io/itam/internal/docstore"
	"fincatech.io/itam/internal/governance/audit"
	"fincatech.io/itam/internal/service"
)

// Server holds all API handler dependencies.
type Server struct {
	client        *ent.Client
	pool          *pgxpool.Pool
	jwtCfg        middleware.JWTConfig
	audit         *audit.Logger
	docs          *docstore.Store
	maxUploadSize int64
	maintCfg      config.MaintenanceConfig

	assets        *service.AssetService
	maintenance   *service.MaintenanceService
	assignments   *service.AssignmentService
	directory     *service.DirectoryService
	catalog       *service.CatalogService
	dashboard     *service.DashboardService
	reports       *service.ReportService
	notifications *service.NotificationService
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient     *ent.Client
	Pool          *pgxpool.Pool
	JWTCfg        middleware.JWTConfig
	Audit         *audit.Logger
	Docs          *docstore.Store
	MaxUploadSize int64
	MaintCfg      config.MaintenanceConfig

	Assets        *service.AssetService
	Maintenance   *service.MaintenanceService
	Assignments   *service.AssignmentService
	Directory     *service.DirectoryService
	Catalog       *service.CatalogService
	Dashboard     *service.DashboardService
	Reports       *service.ReportService
	Notifications *service.NotificationService
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:        deps.EntClient,
		pool:          deps.Pool,
		jwtCfg:        deps.JWTCfg,
		audit:         deps.Audit,
		docs:          deps.Docs,
		maxUploadSize: deps.MaxUploadSize,
		maintCfg:      deps.MaintCfg,
		assets:        deps.Assets,
		maintenance:   deps.Maintenance,
		assignments:   deps.Assignments,
		directory:     deps.Directory,
		catalog:       deps.Catalog,
		dashboard:     deps.Dashboard,
		reports:       deps.Reports,
		notifications: deps.Notifications,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
// All handlers use this instead of hardcoded "anonymous".
func actorFromCtx(c interface{ GetString(any) string }) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
