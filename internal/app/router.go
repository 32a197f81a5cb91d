package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fincatech.io/itam/internal/api/handlers"
	"fincatech.io/itam/internal/api/middleware"
	"fincatech.io/itam/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/health/",
}

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic(jwtCfg))

	api := router.Group("/api/v1")

	api.POST("/auth/login", server.Login)
	api.GET("/auth/me", server.GetCurrentUser)

	api.GET("/health/live", server.GetLiveness)
	api.GET("/health/ready", server.GetReadiness)

	api.POST("/assets", server.CreateAsset)
	api.GET("/assets", server.ListAssets)
	api.GET("/assets/:id", server.GetAsset)
	api.PATCH("/assets/:id", server.UpdateAsset)
	api.DELETE("/assets/:id", server.DeleteAsset)
	api.POST("/assets/:id/retire", server.RetireAsset)
	api.POST("/assets/:id/reactivate", server.ReactivateAsset)
	api.GET("/assets/:id/specs", server.GetAssetSpecs)
	api.GET("/assets/:id/maintenances", server.GetMaintenanceHistory)

	api.POST("/maintenances", server.RecordMaintenance)
	api.GET("/maintenances", server.ListMaintenances)
	api.GET("/maintenances/overview", server.GetMaintenanceOverview)
	api.GET("/maintenances/due", server.ListMaintenanceDue)

	api.POST("/assignments", server.CreateAssignment)
	api.GET("/assignments", server.ListAssignments)
	api.POST("/assignments/bulk", server.BulkAssign)
	api.GET("/assignments/available-assets", server.ListAvailableAssets)
	api.POST("/assignments/:id/return", server.ReturnAssignment)

	catalog := api.Group("/catalog")
	catalog.POST("/regions", server.CreateRegion)
	catalog.GET("/regions", server.ListRegions)
	catalog.DELETE("/regions/:id", server.DeleteRegion)
	catalog.POST("/fincas", server.CreateFinca)
	catalog.GET("/fincas", server.ListFincas)
	catalog.POST("/departamentos", server.CreateDepartamento)
	catalog.GET("/departamentos", server.ListDepartamentos)
	catalog.POST("/areas", server.CreateArea)
	catalog.GET("/areas", server.ListAreas)
	catalog.POST("/tipos-activo", server.CreateTipoActivo)
	catalog.GET("/tipos-activo", server.ListTiposActivo)
	catalog.DELETE("/tipos-activo/:id", server.DeleteTipoActivo)
	catalog.POST("/marcas", server.CreateMarca)
	catalog.GET("/marcas", server.ListMarcas)
	catalog.POST("/modelos", server.CreateModelo)
	catalog.GET("/modelos", server.ListModelos)
	catalog.POST("/proveedores", server.CreateProveedor)
	catalog.GET("/proveedores", server.ListProveedores)

	api.POST("/employees", server.CreateEmployee)
	api.GET("/employees", server.ListEmployees)
	api.GET("/employees/:id", server.GetEmployee)
	api.DELETE("/employees/:id", server.DeleteEmployee)
	api.GET("/employees/:id/assignments", server.ListEmployeeAssignments)

	api.POST("/users", server.CreateUser)
	api.GET("/users", server.ListUsers)

	api.GET("/dashboard/summary", server.GetDashboardSummary)
	api.GET("/dashboard/warranty-expiring", server.GetWarrantyExpiring)
	api.GET("/dashboard/type-region-matrix", server.GetTypeRegionMatrix)

	api.GET("/notifications", server.ListNotifications)
	api.POST("/notifications/:id/read", server.MarkNotificationRead)

	api.GET("/reports/inventory.csv", server.ExportInventoryCSV)
	api.GET("/reports/assignments.csv", server.ExportAssignmentsCSV)
	api.GET("/reports/maintenances.csv", server.ExportMaintenanceCSV)

	api.GET("/audit-logs", server.ListAuditLogs)

	api.POST("/documents", server.UploadDocument)
	api.GET("/documents/*path", server.DownloadDocument)

	return router
}

// buildCORSConfig derives the CORS policy from server config. Wildcard
// origins are stripped unless the unsafe flag is set; allowing all
// origins forces credentials off per the CORS spec.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{"Content-Disposition", middleware.RequestIDHeader}

	if cfg.Server.UnsafeAllowAllOrigins {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
		corsCfg.AllowOrigins = nil
		return corsCfg
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, o := range cfg.Server.AllowedOrigins {
		if o == "*" {
			continue
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = cfg.Server.AllowCredentials
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(jwtCfg middleware.JWTConfig) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(jwtCfg)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
