package errlocal

type ErrConflict struct {
	BaseError
}

func NewErrConflict(msg string, system string, details map[string]any) LocalError {
	return &ErrConflict{
		BaseError: newBase(msg, system, details),
	}
}

func (e *ErrConflict) Kind() Kind {
	return KindConflict
}

func (e *ErrConflict) MarshalJSON() ([]byte, error) {
	return marshal(e.Kind(), &e.BaseError)
}
