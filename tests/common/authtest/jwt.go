//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.SandboxConfig
}

func NewJWTHelper(cfg config.SandboxConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.JWTSecret, h.cfg.ReservationTTL)
}

func (h *JWTHelper) GenerateToken(t *testing.T, reservationID uuid.UUID) string {
	t.Helper()
	token, err := h.Service().GenerateToken(reservationID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, reservationID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, time.Millisecond)
	token, err := service.GenerateToken(reservationID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
