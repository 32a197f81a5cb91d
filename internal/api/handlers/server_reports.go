package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fincatech.io/itam/internal/pkg/logger"
	"fincatech.io/itam/internal/service"
)

func csvHeaders(c *gin.Context, name string) {
	stamp := time.Now().Format("2006-01-02")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+name+`_`+stamp+`.csv"`)
}

// ExportInventoryCSV handles GET /reports/inventory.csv.
func (s *Server) ExportInventoryCSV(c *gin.Context) {
	filter := service.AssetFilter{
		Estado:       c.Query("estado"),
		TipoActivoID: c.Query("tipo_activo_id"),
		RegionID:     c.Query("region_id"),
	}

	csvHeaders(c, "inventario")
	c.Status(http.StatusOK)
	if err := s.reports.WriteInventoryCSV(c.Request.Context(), c.Writer, filter); err != nil {
		// Headers are already flushed; all we can do is log.
		logger.Error("inventory export failed", zap.Error(err))
	}
}

// ExportAssignmentsCSV handles GET /reports/assignments.csv.
func (s *Server) ExportAssignmentsCSV(c *gin.Context) {
	filter := service.AssignmentFilter{
		EmployeeID: c.Query("employee_id"),
		ActiveOnly: c.Query("active") == "true",
	}

	csvHeaders(c, "asignaciones")
	c.Status(http.StatusOK)
	if err := s.reports.WriteAssignmentsCSV(c.Request.Context(), c.Writer, filter); err != nil {
		logger.Error("assignments export failed", zap.Error(err))
	}
}

// ExportMaintenanceCSV handles GET /reports/maintenances.csv.
func (s *Server) ExportMaintenanceCSV(c *gin.Context) {
	csvHeaders(c, "mantenimientos")
	c.Status(http.StatusOK)
	if err := s.reports.WriteMaintenanceCSV(c.Request.Context(), c.Writer, c.Query("activo_id")); err != nil {
		logger.Error("maintenance export failed", zap.Error(err))
	}
}
