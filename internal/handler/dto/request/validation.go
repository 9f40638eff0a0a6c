package request

import (
	"errors"
	"reflect"
	"strings"

	"hotel-booking-engine/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the booking rules on gin's validator. Safe to
// call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator is not go-playground/validator")
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		_, err := booking.ParseMethod(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("payment_type", func(fl validator.FieldLevel) bool {
		_, err := booking.ParseTransactionType(fl.Field().String())
		return err == nil
	})
}

// ValidationDetail flattens binding errors to field -> failed rule.
func ValidationDetail(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	detail := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		detail[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return detail
}

// "CreateOnlineBookingRequest.guest.email" -> "guest.email"
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return strings.TrimPrefix(ns, "StayDates.")
}
