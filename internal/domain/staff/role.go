package staff

import "hotel-booking-engine/internal/pkg/errs"

var ErrInvalidRole = errs.Authorization("invalid staff role")

type Role string

const (
	RoleFrontDesk Role = "front_desk"
	RoleManager   Role = "manager"
	RoleAdmin     Role = "admin"
)

// Actors recorded on history entries and cancellations that are not staff.
const (
	ActorSystem = "system"
	ActorGuest  = "guest"
)

var roleLevel = map[Role]int{
	RoleFrontDesk: 1,
	RoleManager:   2,
	RoleAdmin:     3,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(minRole Role) bool {
	have, ok := roleLevel[r]
	need, okMin := roleLevel[minRole]
	return ok && okMin && have >= need
}
