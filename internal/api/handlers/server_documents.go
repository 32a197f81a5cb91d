package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fincatech.io/itam/internal/pkg/logger"
)

// Document categories map to subdirectories under the storage root.
var documentCategories = map[string]bool{
	"bajas":          true,
	"mantenimientos": true,
	"empleados":      true,
}

// UploadDocument handles POST /documents (multipart). The returned path
// is what retire and maintenance requests reference.
func (s *Server) UploadDocument(c *gin.Context) {
	category := c.PostForm("category")
	if !documentCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_REQUEST_FIELD",
			"message": "unknown document category",
		})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadSize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}
	defer f.Close()

	path, err := s.docs.Save(category, fileHeader.Filename, f)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": path})
}

// DownloadDocument handles GET /documents/*path.
func (s *Server) DownloadDocument(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")

	f, err := s.docs.Open(rel)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="`+pathBase(rel)+`"`)
	c.Header("Content-Type", "application/octet-stream")
	if _, err := io.Copy(c.Writer, f); err != nil {
		logger.Warn("document download interrupted", zap.Error(err), zap.String("path", rel))
	}
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
