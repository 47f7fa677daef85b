//go:build unit || e2e

package authtest

import (
	"testing"

	"goalkick/internal/domain/staff"
	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}
