package validators

import (
	"errors"

	"github.com/MKhiriev/go-secret-share/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTextRequired     = errors.New(app.MsgTextRequired)
	ErrMaxViewsTooLow   = errors.New(app.MsgMaxViewsTooLow)
	ErrTTLNotAllowed    = errors.New(app.MsgTTLNotAllowed)
	ErrInvalidAllowedIP = errors.New(app.MsgInvalidAllowedIP)
)

// FieldError ties a validation failure to the form field it belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
