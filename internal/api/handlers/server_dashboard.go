package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary handles GET /dashboard/summary.
func (s *Server) GetDashboardSummary(c *gin.Context) {
	summary, err := s.dashboard.GetSummary(c.Request.Context(), s.maintCfg.DueSoonDays, s.maintCfg.WarrantyDays)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWarrantyExpiring handles GET /dashboard/warranty-expiring.
func (s *Server) GetWarrantyExpiring(c *gin.Context) {
	days := s.maintCfg.WarrantyDays
	if d, ok := intQuery(c, "days"); ok {
		days = d
	}

	assets, err := s.dashboard.WarrantyExpiring(c.Request.Context(), days)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": assets, "days": days})
}

// GetTypeRegionMatrix handles GET /dashboard/type-region-matrix:
// active asset counts grouped by type and region.
func (s *Server) GetTypeRegionMatrix(c *gin.Context) {
	cells, err := s.dashboard.TypeRegionMatrix(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	limit := 50
	if l, ok := intQuery(c, "limit"); ok {
		limit = l
	}

	items, err := s.notifications.List(c.Request.Context(), c.Query("unread") == "true", limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// MarkNotificationRead handles POST /notifications/{id}/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	if err := s.notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
