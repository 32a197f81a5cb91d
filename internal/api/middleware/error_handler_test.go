package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fincatech.io/itam/internal/pkg/errors"
	"fincatech.io/itam/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func serveWithError(t *testing.T, fail gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/t", fail)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	return w
}

func TestErrorHandler_PassesCleanResponses(t *testing.T) {
	w := serveWithError(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestErrorHandler_RendersAppError(t *testing.T) {
	w := serveWithError(t, func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound(apperrors.CodeAssetNotFound, "asset not found"))
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["code"] != apperrors.CodeAssetNotFound {
		t.Errorf("code = %q, want %q", body["code"], apperrors.CodeAssetNotFound)
	}
	if body["message"] != "asset not found" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestErrorHandler_RendersParams(t *testing.T) {
	w := serveWithError(t, func(c *gin.Context) {
		_ = c.Error(apperrors.ErrAssetAssignedf("activo-9"))
	})

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	var body struct {
		Code   string                 `json:"code"`
		Params map[string]interface{} `json:"params"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Params["activo_id"] != "activo-9" {
		t.Errorf("params = %v, want activo_id activo-9", body.Params)
	}
}

func TestErrorHandler_MasksUnknownErrors(t *testing.T) {
	w := serveWithError(t, func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("pq: deadlock detected"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", body["code"])
	}
	// The raw cause must never leak to clients.
	if body["message"] == "pq: deadlock detected" {
		t.Error("internal error detail leaked into the response")
	}
}
