package api

import (
	"errors"
	"net/http"

	"github.com/trends/trends_api/internal/errlocal"
)

// statusCode is the HTTP classification table for error kinds.
func statusCode(kind errlocal.Kind) int {
	switch kind {
	case errlocal.KindNotFound:
		return http.StatusNotFound
	case errlocal.KindBadRequest:
		return http.StatusBadRequest
	case errlocal.KindConflict:
		return http.StatusConflict
	case errlocal.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type ErrorResponse struct {
	Kind    errlocal.Kind  `json:"kind"`
	Message string         `json:"message"`
	System  string         `json:"system,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// errorBody keeps LocalError messages verbatim. Anything else is reported as
// a generic internal error so driver text does not leak to clients.
func errorBody(err error, kind errlocal.Kind) ErrorResponse {
	var le errlocal.LocalError
	if !errors.As(err, &le) {
		return ErrorResponse{Kind: kind, Message: http.StatusText(http.StatusInternalServerError)}
	}

	resp := ErrorResponse{
		Kind:    kind,
		Message: le.Message(),
		Details: le.Details(),
	}
	if kind != errlocal.KindInternal {
		resp.System = le.System()
	}
	return resp
}
