package usecase

import (
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// StaffTokenValidator resolves a back-office bearer token to a staff member.
type StaffTokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type staffTokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewStaffTokenValidator(jwtService *jwt.Service) StaffTokenValidator {
	return &staffTokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *staffTokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrAuthorization)
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", errs.Authorization("token carries no staff id")
	}

	return claims.UserID, role, nil
}
