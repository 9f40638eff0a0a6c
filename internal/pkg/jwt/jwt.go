package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	audienceStaff = "staff"
	audienceGuest = "booking-guest"
)

// Claims carried by staff tokens issued by the back-office identity service.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// BookingClaims grant a guest read access to a single booking.
type BookingClaims struct {
	BookingID uuid.UUID `json:"booking_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

func (s *Service) GenerateToken(userID uuid.UUID, role string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{audienceStaff},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := s.parse(tokenString, claims, audienceStaff); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Service) IssueBookingToken(bookingID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := BookingClaims{
		BookingID: bookingID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   bookingID.String(),
			Audience:  jwt.ClaimStrings{audienceGuest},
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ParseBookingToken(tokenString string) (uuid.UUID, error) {
	claims := &BookingClaims{}
	if err := s.parse(tokenString, claims, audienceGuest); err != nil {
		return uuid.Nil, err
	}
	if claims.BookingID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return claims.BookingID, nil
}

func (s *Service) parse(tokenString string, claims jwt.Claims, audience string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}

	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
