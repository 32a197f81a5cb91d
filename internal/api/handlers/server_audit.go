package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/auditlog"
)

// ListAuditLogs handles GET /audit-logs, newest first.
func (s *Server) ListAuditLogs(c *gin.Context) {
	limit, offset, page, perPage := pagedList(c)

	query := s.client.AuditLog.Query()
	if v := c.Query("entity_type"); v != "" {
		query = query.Where(auditlog.EntityTypeEQ(v))
	}
	if v := c.Query("entity_id"); v != "" {
		query = query.Where(auditlog.EntityIDEQ(v))
	}
	if v := c.Query("user_id"); v != "" {
		query = query.Where(auditlog.UserIDEQ(v))
	}
	if v := c.Query("activity_type"); v != "" {
		query = query.Where(auditlog.ActivityTypeEQ(v))
	}

	logs, err := query.
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Items: logs, Page: page, PerPage: perPage})
}
