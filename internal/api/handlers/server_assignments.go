package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/internal/service"
)

// CreateAssignment handles POST /assignments.
func (s *Server) CreateAssignment(c *gin.Context) {
	var input service.AssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	asg, err := s.assignments.Assign(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, asg)
}

type returnRequest struct {
	ReturnedDate *time.Time `json:"returned_date,omitempty"`
}

// ReturnAssignment handles POST /assignments/{id}/return.
func (s *Server) ReturnAssignment(c *gin.Context) {
	var req returnRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
			return
		}
	}

	asg, err := s.assignments.Return(c.Request.Context(), c.Param("id"), req.ReturnedDate, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, asg)
}

type bulkAssignRequest struct {
	EmployeeID string                   `json:"employee_id" binding:"required"`
	Items      []service.BulkAssignItem `json:"items" binding:"required"`
}

// BulkAssign handles POST /assignments/bulk. The batch is atomic: any
// conflict anywhere in it leaves nothing assigned.
func (s *Server) BulkAssign(c *gin.Context) {
	var req bulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	created, err := s.assignments.BulkAssign(c.Request.Context(), req.EmployeeID, req.Items, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignments": created})
}

// ListAssignments handles GET /assignments.
func (s *Server) ListAssignments(c *gin.Context) {
	limit, offset, page, perPage := pagedList(c)
	filter := service.AssignmentFilter{
		EmployeeID: c.Query("employee_id"),
		ActivoID:   c.Query("activo_id"),
		ActiveOnly: c.Query("active") == "true",
		Limit:      limit,
		Offset:     offset,
	}

	asgs, err := s.assignments.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Items: asgs, Page: page, PerPage: perPage})
}

// ListAvailableAssets handles GET /assignments/available-assets:
// active assets with no open assignment, for hand-over pickers.
func (s *Server) ListAvailableAssets(c *gin.Context) {
	limit, offset, page, perPage := pagedList(c)
	filter := service.AssetFilter{
		TipoActivoID: c.Query("tipo_activo_id"),
		Search:       c.Query("q"),
		Limit:        limit,
		Offset:       offset,
	}

	assets, err := s.assignments.AvailableAssets(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Items: assets, Page: page, PerPage: perPage})
}
