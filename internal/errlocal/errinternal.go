package errlocal

type ErrInternal struct {
	BaseError
}

func NewErrInternal(msg string, system string, details map[string]any) LocalError {
	return &ErrInternal{
		BaseError: newBase(msg, system, details),
	}
}

func (e *ErrInternal) Kind() Kind {
	return KindInternal
}

func (e *ErrInternal) MarshalJSON() ([]byte, error) {
	return marshal(e.Kind(), &e.BaseError)
}
