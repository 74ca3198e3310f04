package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/trends/trends_api/internal/errlocal"
)

const (
	maxBodyBytes = 1 << 20
	bodySystem   = "request_body"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type HTTPResource interface {
	CreateTrendRequest | UpdateScoreRequest | ImportTrendsRequest
}

// GetRequestBody decodes and validates a JSON body. Every failure is an
// ErrBadRequest.
func GetRequestBody[T HTTPResource](r *http.Request) (*T, error) {
	var body T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errlocal.NewErrBadRequest("request body is empty", bodySystem, nil)
		}
		return nil, errlocal.NewErrBadRequest("invalid request body", err.Error(), nil)
	}

	if err := validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]any, len(verrs))
			for _, fe := range verrs {
				fields[fieldPath(fe)] = fmt.Sprintf("failed on '%s'", fe.Tag())
			}
			return nil, errlocal.NewErrBadRequest("validation failed", bodySystem, fields)
		}
		return nil, errlocal.NewErrBadRequest("validation failed", err.Error(), nil)
	}

	return &body, nil
}

// fieldPath drops the struct name from the namespace, so nested records
// read as "Trends[1].Name".
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}
