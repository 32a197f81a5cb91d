package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := NotFound(CodeAssetNotFound, "asset not found")
	if got, want := plain.Error(), "ASSET_NOT_FOUND: asset not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(fmt.Errorf("connection reset"), "DB_ERROR", "database failure", http.StatusInternalServerError)
	if got, want := wrapped.Error(), "DB_ERROR: database failure: connection reset"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_UnwrapChain(t *testing.T) {
	cause := fmt.Errorf("row locked")
	appErr := Wrap(cause, CodeAssetAssigned, "asset already assigned", http.StatusConflict)

	if !errors.Is(appErr, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	rewrapped := fmt.Errorf("assign: %w", appErr)
	got, ok := IsAppError(rewrapped)
	if !ok {
		t.Fatal("IsAppError should find an AppError anywhere in the chain")
	}
	if got.Code != CodeAssetAssigned {
		t.Errorf("Code = %q, want %q", got.Code, CodeAssetAssigned)
	}
}

func TestIsAppError_PlainError(t *testing.T) {
	if _, ok := IsAppError(fmt.Errorf("plain")); ok {
		t.Error("IsAppError should reject a plain error")
	}
}

func TestConstructorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound(CodeAssetNotFound, "missing"), http.StatusNotFound},
		{"BadRequest", BadRequest(CodeValidationFailed, "bad input"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized(CodeAuthFailed, "no"), http.StatusUnauthorized},
		{"Conflict", Conflict(CodeAssetExists, "duplicate serie"), http.StatusConflict},
		{"InvalidState", InvalidState(CodeAssetRetired, "already retired"), http.StatusConflict},
		{"Internal", Internal("INTERNAL_ERROR", "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestHelpers_ParamShape(t *testing.T) {
	err := ErrTypeConflictf("emp-1", "tipo-laptop")
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("HTTPStatus = %d, want 409", err.HTTPStatus)
	}
	if err.Code != CodeTypeConflict {
		t.Errorf("Code = %q, want %q", err.Code, CodeTypeConflict)
	}
	if err.Params["employee_id"] != "emp-1" || err.Params["tipo_activo_id"] != "tipo-laptop" {
		t.Errorf("Params = %v, want employee and type ids", err.Params)
	}
}
