package staff

import (
	"time"

	"github.com/google/uuid"
)

// Member is a gatekeeper or administrator account. Buyers never log in.
type Member struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
}

func NewMember(email Email, passwordHash string, role Role) *Member {
	return &Member{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func Reconstruct(id uuid.UUID, email Email, passwordHash string, role Role, lastLogin *time.Time, isActive bool) *Member {
	return &Member{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
	}
}

func (m *Member) ID() uuid.UUID         { return m.id }
func (m *Member) Email() Email          { return m.email }
func (m *Member) PasswordHash() string  { return m.passwordHash }
func (m *Member) Role() Role            { return m.role }
func (m *Member) LastLogin() *time.Time { return m.lastLogin }
func (m *Member) IsActive() bool        { return m.isActive }
