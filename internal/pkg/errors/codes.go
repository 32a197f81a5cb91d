package errors

import "net/http"

// Error code constants.
// Errors carry code + params; messages are short English summaries and
// the frontend handles translation.

// Asset error codes.
const (
	CodeAssetNotFound       = "ASSET_NOT_FOUND"
	CodeAssetExists         = "ASSET_ALREADY_EXISTS"
	CodeAssetRetired        = "ASSET_RETIRED"
	CodeAssetAlreadyActive  = "ASSET_ALREADY_ACTIVE"
	CodeRetireReasonMissing = "RETIRE_REASON_REQUIRED"
)

// Assignment error codes.
const (
	CodeAssignmentNotFound = "ASSIGNMENT_NOT_FOUND"
	CodeAssetAssigned      = "ASSET_ALREADY_ASSIGNED"
	CodeTypeConflict       = "EMPLOYEE_HAS_ASSET_OF_TYPE"
	CodeAlreadyReturned    = "ASSIGNMENT_ALREADY_RETURNED"
	CodeBulkAssignFailed   = "BULK_ASSIGN_FAILED"
)

// Maintenance error codes.
const (
	CodeMaintenanceNotFound = "MAINTENANCE_NOT_FOUND"
	CodeTechnicianNotFound  = "TECHNICIAN_NOT_FOUND"
)

// Catalog/directory error codes.
const (
	CodeCatalogNotFound  = "CATALOG_ENTRY_NOT_FOUND"
	CodeCatalogExists    = "CATALOG_ENTRY_EXISTS"
	CodeCatalogInUse     = "CATALOG_ENTRY_IN_USE"
	CodeEmployeeNotFound = "EMPLOYEE_NOT_FOUND"
	CodeUserNotFound     = "USER_NOT_FOUND"
)

// Document error codes.
const (
	CodeDocumentNotFound    = "DOCUMENT_NOT_FOUND"
	CodeDocumentTypeInvalid = "DOCUMENT_TYPE_NOT_ALLOWED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrAssetNotFoundf creates an asset not found error.
func ErrAssetNotFoundf(identifier string) *AppError {
	return &AppError{
		Code:       CodeAssetNotFound,
		Message:    "asset not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"identifier": identifier},
	}
}

// ErrAssetAssignedf creates a conflict error for an asset that already
// has an open assignment.
func ErrAssetAssignedf(activoID string) *AppError {
	return &AppError{
		Code:       CodeAssetAssigned,
		Message:    "asset is already assigned",
		HTTPStatus: http.StatusConflict,
		Params:     map[string]interface{}{"activo_id": activoID},
	}
}

// ErrTypeConflictf creates a conflict error for an employee who already
// holds an active asset of the same type.
func ErrTypeConflictf(employeeID, tipoActivoID string) *AppError {
	return &AppError{
		Code:       CodeTypeConflict,
		Message:    "employee already holds an active asset of this type",
		HTTPStatus: http.StatusConflict,
		Params: map[string]interface{}{
			"employee_id":    employeeID,
			"tipo_activo_id": tipoActivoID,
		},
	}
}

// ErrInvalidRequestFieldf creates a bad request error for a malformed field.
func ErrInvalidRequestFieldf(fieldName string) *AppError {
	return &AppError{
		Code:       CodeInvalidRequestField,
		Message:    "request contains invalid field: " + fieldName,
		HTTPStatus: http.StatusBadRequest,
	}
}
