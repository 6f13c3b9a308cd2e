package commands

import (
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidReservationToken = errs.New("invalid reservation token")

// TokenValidator resolves the opaque reservation id a client sends back.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

// TokenIssuer hands out the opaque reservation id.
type TokenIssuer interface {
	GenerateToken(reservationID uuid.UUID) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidReservationToken)
	}
	return claims.ReservationID, nil
}
