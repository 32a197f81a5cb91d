package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestActorFromCtx(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := actorFromCtx(c); got != "anonymous" {
		t.Errorf("actor without user_id = %q, want anonymous", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", "user-42")
	if got := actorFromCtx(c); got != "user-42" {
		t.Errorf("actor = %q, want user-42", got)
	}
}
