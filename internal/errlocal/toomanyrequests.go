package errlocal

type ErrTooManyRequests struct {
	BaseError
}

func NewErrTooManyRequests(msg string) LocalError {
	return &ErrTooManyRequests{
		BaseError: newBase(msg, "", nil),
	}
}

func (e *ErrTooManyRequests) Kind() Kind {
	return KindTooManyRequests
}

func (e *ErrTooManyRequests) MarshalJSON() ([]byte, error) {
	return marshal(e.Kind(), &e.BaseError)
}
