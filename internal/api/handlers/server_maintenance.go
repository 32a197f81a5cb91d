package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/internal/service"
)

// RecordMaintenance handles POST /maintenances.
func (s *Server) RecordMaintenance(c *gin.Context) {
	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	m, err := s.maintenance.Record(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GetMaintenanceHistory handles GET /assets/{id}/maintenances, newest first.
func (s *Server) GetMaintenanceHistory(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := s.assets.Get(ctx, c.Param("id"))
	if err != nil {
		a, err = s.assets.GetByIdentifier(ctx, c.Param("id"))
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	history, err := s.maintenance.History(ctx, a.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": history})
}

// ListMaintenances handles GET /maintenances with optional activo_id
// and tecnico_id filters.
func (s *Server) ListMaintenances(c *gin.Context) {
	limit, offset, page, perPage := pagedList(c)
	records, err := s.maintenance.List(c.Request.Context(), service.MaintenanceFilter{
		ActivoID:  c.Query("activo_id"),
		TecnicoID: c.Query("tecnico_id"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Items: records, Page: page, PerPage: perPage})
}

// GetMaintenanceOverview handles GET /maintenances/overview: the
// standing of every active asset, realizados or nunca.
func (s *Server) GetMaintenanceOverview(c *gin.Context) {
	rows, err := s.maintenance.Overview(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// ListMaintenanceDue handles GET /maintenances/due: active assets whose
// cached due date falls within the lookahead window.
func (s *Server) ListMaintenanceDue(c *gin.Context) {
	days := s.maintCfg.DueSoonDays
	if d, ok := intQuery(c, "days"); ok {
		days = d
	}

	cutoff := time.Now().AddDate(0, 0, days)
	assets, err := s.maintenance.DueBefore(c.Request.Context(), cutoff)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": assets, "days": days})
}
