package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/internal/service"
)

type catalogNameRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type scopedNameRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id" binding:"required"`
}

// CreateRegion handles POST /catalog/regions.
func (s *Server) CreateRegion(c *gin.Context) {
	var req catalogNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	r, err := s.catalog.CreateRegion(c.Request.Context(), req.Name, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListRegions handles GET /catalog/regions.
func (s *Server) ListRegions(c *gin.Context) {
	items, err := s.catalog.ListRegions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DeleteRegion handles DELETE /catalog/regions/{id}.
func (s *Server) DeleteRegion(c *gin.Context) {
	if err := s.catalog.DeleteRegion(c.Request.Context(), c.Param("id"), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateFinca handles POST /catalog/fincas. ParentID is the region.
func (s *Server) CreateFinca(c *gin.Context) {
	var req scopedNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	f, err := s.catalog.CreateFinca(c.Request.Context(), req.Name, req.ParentID, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// ListFincas handles GET /catalog/fincas.
func (s *Server) ListFincas(c *gin.Context) {
	items, err := s.catalog.ListFincas(c.Request.Context(), c.Query("region_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateDepartamento handles POST /catalog/departamentos.
func (s *Server) CreateDepartamento(c *gin.Context) {
	var req catalogNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	d, err := s.catalog.CreateDepartamento(c.Request.Context(), req.Name, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListDepartamentos handles GET /catalog/departamentos.
func (s *Server) ListDepartamentos(c *gin.Context) {
	items, err := s.catalog.ListDepartamentos(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateArea handles POST /catalog/areas. ParentID is the departamento.
func (s *Server) CreateArea(c *gin.Context) {
	var req scopedNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	a, err := s.catalog.CreateArea(c.Request.Context(), req.Name, req.ParentID, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAreas handles GET /catalog/areas.
func (s *Server) ListAreas(c *gin.Context) {
	items, err := s.catalog.ListAreas(c.Request.Context(), c.Query("departamento_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateTipoActivo handles POST /catalog/tipos-activo.
func (s *Server) CreateTipoActivo(c *gin.Context) {
	var req catalogNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	t, err := s.catalog.CreateTipoActivo(c.Request.Context(), req.Name, req.Description, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListTiposActivo handles GET /catalog/tipos-activo.
func (s *Server) ListTiposActivo(c *gin.Context) {
	items, err := s.catalog.ListTiposActivo(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DeleteTipoActivo handles DELETE /catalog/tipos-activo/{id}.
func (s *Server) DeleteTipoActivo(c *gin.Context) {
	if err := s.catalog.DeleteTipoActivo(c.Request.Context(), c.Param("id"), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateMarca handles POST /catalog/marcas.
func (s *Server) CreateMarca(c *gin.Context) {
	var req catalogNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	m, err := s.catalog.CreateMarca(c.Request.Context(), req.Name, req.Description, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMarcas handles GET /catalog/marcas.
func (s *Server) ListMarcas(c *gin.Context) {
	items, err := s.catalog.ListMarcas(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateModelo handles POST /catalog/modelos.
func (s *Server) CreateModelo(c *gin.Context) {
	var input service.ModeloInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	m, err := s.catalog.CreateModelo(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListModelos handles GET /catalog/modelos.
func (s *Server) ListModelos(c *gin.Context) {
	items, err := s.catalog.ListModelos(c.Request.Context(), c.Query("marca_id"), c.Query("tipo_activo_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateProveedor handles POST /catalog/proveedores.
func (s *Server) CreateProveedor(c *gin.Context) {
	var input service.ProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	p, err := s.catalog.CreateProveedor(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListProveedores handles GET /catalog/proveedores.
func (s *Server) ListProveedores(c *gin.Context) {
	items, err := s.catalog.ListProveedores(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
