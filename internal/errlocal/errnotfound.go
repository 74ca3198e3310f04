package errlocal

import "fmt"

// ErrNotFound reports that a requested resource does not exist.
type ErrNotFound struct {
	BaseError
}

func NewErrNotFound(msg string, system string, details map[string]any) LocalError {
	return &ErrNotFound{
		BaseError: newBase(msg, system, details),
	}
}

func NotFoundf(format string, args ...any) LocalError {
	return NewErrNotFound(fmt.Sprintf(format, args...), "", nil)
}

func (e *ErrNotFound) Kind() Kind {
	return KindNotFound
}

func (e *ErrNotFound) MarshalJSON() ([]byte, error) {
	return marshal(e.Kind(), &e.BaseError)
}
