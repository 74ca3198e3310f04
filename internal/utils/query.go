package utils

import (
	"net/http"
	"strconv"
)

const (
	offsetQueryKey = "offset"
	limitQueryKey  = "limit"
)

// GetQueryParam returns defaultVal when the key is absent, empty, or (for
// ints) negative or unparsable.
func GetQueryParam[T string | int](r *http.Request, key string, defaultVal T) T {
	qVal := r.URL.Query().Get(key)
	if qVal == "" {
		return defaultVal
	}
	var result T
	switch any(result).(type) {
	case string:
		return any(qVal).(T)
	case int:
		intVal, err := strconv.Atoi(qVal)
		if err != nil || intVal < 0 {
			return defaultVal
		}
		result = any(intVal).(T)
	}

	return result
}

// GetPagination reads limit and offset, clamping limit to (0, maxLimit].
func GetPagination(r *http.Request, defaultLimit, maxLimit int) (limit, offset int) {
	limit = GetQueryParam(r, limitQueryKey, defaultLimit)
	if limit == 0 || limit > maxLimit {
		limit = maxLimit
	}
	offset = GetQueryParam(r, offsetQueryKey, 0)
	return limit, offset
}
