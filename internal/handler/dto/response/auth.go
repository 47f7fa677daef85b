package response

import (
	"time"

	"goalkick/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	StaffID     uuid.UUID `json:"staff_id"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		StaffID:     r.StaffID,
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt,
	}
}
