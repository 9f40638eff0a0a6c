package customer

import (
	"net/mail"
	"regexp"
	"strings"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errs.Validation("guest name is required")
	ErrInvalidPhone = errs.Validation("invalid phone number")
	ErrInvalidEmail = errs.Validation("invalid email address")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// Profile is the guest data a booking needs to resolve a customer record.
type Profile struct {
	FullName     string
	Phone        string
	Email        string
	IdentityCard *string
	Address      *string
}

// NewProfile normalizes contact fields; (phone, email) is the identity key.
func NewProfile(fullName, phone, email string, identityCard, address *string) (Profile, error) {
	name := strings.Join(strings.Fields(fullName), " ")
	if name == "" {
		return Profile{}, ErrNameRequired
	}

	p := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(phone)
	if !phonePattern.MatchString(p) {
		return Profile{}, ErrInvalidPhone
	}

	e := strings.ToLower(strings.TrimSpace(email))
	if addr, err := mail.ParseAddress(e); err != nil || addr.Address != e {
		return Profile{}, ErrInvalidEmail
	}

	return Profile{
		FullName:     name,
		Phone:        p,
		Email:        e,
		IdentityCard: trimmed(identityCard),
		Address:      trimmed(address),
	}, nil
}

type Customer struct {
	ID uuid.UUID
	Profile
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
