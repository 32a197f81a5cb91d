package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/internal/service"
)

// CreateAsset handles POST /assets.
func (s *Server) CreateAsset(c *gin.Context) {
	var input service.CreateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	a, err := s.assets.Create(c.Request.Context(), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAssets handles GET /assets.
func (s *Server) ListAssets(c *gin.Context) {
	limit, offset, page, perPage := pagedList(c)
	filter := service.AssetFilter{
		Estado:       c.Query("estado"),
		TipoActivoID: c.Query("tipo_activo_id"),
		RegionID:     c.Query("region_id"),
		Search:       c.Query("q"),
		Limit:        limit,
		Offset:       offset,
	}

	assets, err := s.assets.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Items: assets, Page: page, PerPage: perPage})
}

// GetAsset handles GET /assets/{id}. The path segment accepts an asset
// ID, a hostname, or a serie so scanner-driven lookups work directly.
func (s *Server) GetAsset(c *gin.Context) {
	ctx := c.Request.Context()
	ref := c.Param("id")

	a, err := s.assets.Get(ctx, ref)
	if err != nil {
		a, err = s.assets.GetByIdentifier(ctx, ref)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	specs, err := s.assets.Specs(ctx, a)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, AssetResponse{Activo: a, Specs: specs})
}

// UpdateAsset handles PATCH /assets/{id}.
func (s *Server) UpdateAsset(c *gin.Context) {
	var input service.UpdateAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	a, err := s.assets.Update(c.Request.Context(), c.Param("id"), input, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAsset handles DELETE /assets/{id}. Assets with maintenance or
// assignment history cannot be deleted, only retired.
func (s *Server) DeleteAsset(c *gin.Context) {
	if err := s.assets.Delete(c.Request.Context(), c.Param("id"), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type retireRequest struct {
	Motivo     string   `json:"motivo"`
	Documentos []string `json:"documentos,omitempty"`
}

// RetireAsset handles POST /assets/{id}/retire. Documentos carries
// storage paths returned by the document upload endpoint.
func (s *Server) RetireAsset(c *gin.Context) {
	var req retireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	a, err := s.assets.Retire(c.Request.Context(), c.Param("id"), req.Motivo, actorFromCtx(c), req.Documentos)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ReactivateAsset handles POST /assets/{id}/reactivate.
func (s *Server) ReactivateAsset(c *gin.Context) {
	a, err := s.assets.Reactivate(c.Request.Context(), c.Param("id"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetAssetSpecs handles GET /assets/{id}/specs: the resolved technical
// sheet only, without the asset envelope.
func (s *Server) GetAssetSpecs(c *gin.Context) {
	ctx := c.Request.Context()
	a, err := s.assets.Get(ctx, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	specs, err := s.assets.Specs(ctx, a)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, specs)
}
