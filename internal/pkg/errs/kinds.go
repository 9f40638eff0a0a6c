package errs

import cr "github.com/cockroachdb/errors"

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these and callers branch with Is.
var (
	ErrValidation           = cr.New("validation error")
	ErrAvailabilityConflict = cr.New("room no longer available")
	ErrNotFound             = cr.New("not found")
	ErrStateConflict        = cr.New("state conflict")
	ErrPayment              = cr.New("payment error")
	ErrAuthorization        = cr.New("authorization error")
	ErrServer               = cr.New("server error")
)

type Kind string

const (
	KindValidation           Kind = "VALIDATION_ERROR"
	KindAvailabilityConflict Kind = "ROOM_NOT_AVAILABLE"
	KindNotFound             Kind = "NOT_FOUND"
	KindStateConflict        Kind = "STATE_CONFLICT"
	KindPayment              Kind = "PAYMENT_ERROR"
	KindAuthorization        Kind = "UNAUTHORIZED"
	KindServer               Kind = "SERVER_ERROR"
)

var kindOrder = []struct {
	kind   Kind
	marker error
}{
	{KindAvailabilityConflict, ErrAvailabilityConflict},
	{KindStateConflict, ErrStateConflict},
	{KindPayment, ErrPayment},
	{KindValidation, ErrValidation},
	{KindNotFound, ErrNotFound},
	{KindAuthorization, ErrAuthorization},
	{KindServer, ErrServer},
}

// KindOf reports the taxonomy kind of err. Unmarked errors are server errors.
func KindOf(err error) Kind {
	for _, k := range kindOrder {
		if cr.Is(err, k.marker) {
			return k.kind
		}
	}
	return KindServer
}

func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

func AvailabilityConflict(msg string) error {
	return cr.Mark(cr.New(msg), ErrAvailabilityConflict)
}

func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

func StateConflict(msg string) error {
	return cr.Mark(cr.New(msg), ErrStateConflict)
}

func StateConflictf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrStateConflict)
}

func Payment(msg string) error {
	return cr.Mark(cr.New(msg), ErrPayment)
}

func Authorization(msg string) error {
	return cr.Mark(cr.New(msg), ErrAuthorization)
}
