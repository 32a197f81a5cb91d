package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/internal/service"
)

// CreateEmployee handles POST /employees.
func (s *Server) CreateEmployee(c *gin.Context) {
	var input service.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	e, err := s.directory.CreateEmployee(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GetEmployee handles GET /employees/{id}.
func (s *Server) GetEmployee(c *gin.Context) {
	e, err := s.directory.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// ListEmployees handles GET /employees.
func (s *Server) ListEmployees(c *gin.Context) {
	items, err := s.directory.ListEmployees(c.Request.Context(), c.Query("departamento_id"), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DeleteEmployee handles DELETE /employees/{id}. Employees with
// assignment history cannot be deleted.
func (s *Server) DeleteEmployee(c *gin.Context) {
	if err := s.directory.DeleteEmployee(c.Request.Context(), c.Param("id"), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEmployeeAssignments handles GET /employees/{id}/assignments.
func (s *Server) ListEmployeeAssignments(c *gin.Context) {
	limit, offset, page, perPage := pagedList(c)
	filter := service.AssignmentFilter{
		EmployeeID: c.Param("id"),
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

// CreateUser handles POST /users.
func (s *Server) CreateUser(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	u, err := s.directory.CreateUser(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// ListUsers handles GET /users.
func (s *Server) ListUsers(c *gin.Context) {
	items, err := s.directory.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
