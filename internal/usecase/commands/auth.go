package commands

import (
	"context"
	"log/slog"
	"time"

	"goalkick/internal/domain/staff"
	"goalkick/internal/infra"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/pkg/jwt"
	"goalkick/internal/pkg/password"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrStaffInactive      = errs.New("staff member inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	StaffID     uuid.UUID
	Role        staff.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := staff.NewCredentials(email, rawPassword)
	if err != nil {
		// Same answer as a wrong password so malformed input reveals nothing
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	member, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(member.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, expiresAt, err := a.jwtService.GenerateToken(member.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Staff().UpdateLastLogin(ctx, tx.DB(), member.ID)
	})
	if err != nil {
		// Login already succeeded; only the audit timestamp is lost
		slog.Warn("failed to update last login", "staff_id", member.ID, "error", err.Error())
	}

	slog.Info("staff login", "staff_id", member.ID, "role", role.String())
	return &LoginResult{
		StaffID:     member.ID,
		Role:        role,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*shared.StaffSnapshot, error) {
	member, err := a.uow.CommandReads().StaffByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !member.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(member.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return member, nil
}
