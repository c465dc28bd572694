package httpx

import (
	"net/http"

	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

// WriteAppError maps an application error to the matching HTTP response.
// Unrecognized errors are reported as a generic 500 without leaking detail.
func WriteAppError(w http.ResponseWriter, err error) {
	var code int
	var errCode string

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		code, errCode = http.StatusNotFound, "not_found"
	case apperrors.ErrCodeValidation:
		code, errCode = http.StatusBadRequest, "validation_error"
	case apperrors.ErrCodeUnauthenticated:
		code, errCode = http.StatusUnauthorized, "authentication_required"
	case apperrors.ErrCodeForbidden:
		code, errCode = http.StatusForbidden, "insufficient_permissions"
	case apperrors.ErrCodeExternalAuth:
		code, errCode = http.StatusInternalServerError, "external_auth_failed"
	case apperrors.ErrCodeStorageFault:
		code, errCode = http.StatusInternalServerError, "storage_unavailable"
	default:
		code, errCode = http.StatusInternalServerError, "internal_error"
	}

	WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: err})
}
