package errlocal

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Kind classifies a LocalError. It is fixed per error type, never per instance.
type Kind string

const (
	KindInternal        Kind = "internal"
	KindNotFound        Kind = "not_found"
	KindBadRequest      Kind = "bad_request"
	KindConflict        Kind = "conflict"
	KindTooManyRequests Kind = "too_many_requests"
)

const (
	systemPrefix  = "system: "
	detailsPrefix = "details: "
)

type LocalError interface {
	error
	Message() string
	System() string
	Details() map[string]any
	Kind() Kind
	Base() *BaseError
}

// BaseError holds the data shared by every error kind. Fields are set once by
// the constructors and only read afterwards.
type BaseError struct {
	msg     string
	sys     string
	details map[string]any
}

func newBase(msg, system string, details map[string]any) BaseError {
	return BaseError{
		msg:     msg,
		sys:     system,
		details: maps.Clone(details),
	}
}

func (e *BaseError) Error() string {
	b := strings.Builder{}
	b.WriteString(e.msg)
	if e.sys != "" {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(systemPrefix + e.sys)
	}
	if len(e.details) > 0 {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(detailsPrefix)
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(key + ": " + fmt.Sprintf("%v", e.details[key]))
		}
	}
	return b.String()
}

func (e *BaseError) Message() string {
	return e.msg
}

func (e *BaseError) System() string {
	return e.sys
}

// Details returns a copy; mutating it does not affect the error.
func (e *BaseError) Details() map[string]any {
	return maps.Clone(e.details)
}

func (e *BaseError) Kind() Kind {
	return KindInternal
}

func (e *BaseError) Base() *BaseError {
	return e
}

type wireError struct {
	Kind    Kind           `json:"kind"`
	Message string         `json:"message,omitempty"`
	System  string         `json:"system,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func marshal(kind Kind, b *BaseError) ([]byte, error) {
	return json.Marshal(wireError{
		Kind:    kind,
		Message: b.msg,
		System:  b.sys,
		Details: b.details,
	})
}

// KindOf reports the kind of the first LocalError in err's chain.
// Errors that carry no kind are internal.
func KindOf(err error) Kind {
	var le LocalError
	if errors.As(err, &le) {
		return le.Kind()
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// MessageOf returns the message of the first LocalError in err's chain, or
// err.Error() for anything else.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var le LocalError
	if errors.As(err, &le) {
		return le.Message()
	}
	return err.Error()
}
