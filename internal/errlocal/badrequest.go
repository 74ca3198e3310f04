package errlocal

type ErrBadRequest struct {
	BaseError
}

func NewErrBadRequest(msg string, system string, details map[string]any) LocalError {
	return &ErrBadRequest{
		BaseError: newBase(msg, system, details),
	}
}

func (e *ErrBadRequest) Kind() Kind {
	return KindBadRequest
}

func (e *ErrBadRequest) MarshalJSON() ([]byte, error) {
	return marshal(e.Kind(), &e.BaseError)
}
