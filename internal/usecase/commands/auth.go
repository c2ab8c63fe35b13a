package commands

import (
	"context"
	"errors"
	"log/slog"

	"smakownia-backend/internal/domain/user"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/pkg/jwt"
	"smakownia-backend/internal/pkg/password"
)

type LoginResult struct {
	Token string
	User  *user.User
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	u, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// An unknown account and a wrong password must look the same to the
		// caller.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "password comparison")
	}

	token, err := c.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "token generation")
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID()); err != nil {
		// Bookkeeping only; the login itself already succeeded.
		slog.Warn("last-login update failed", "user_id", u.ID().String(), "error", err.Error())
	}

	return &LoginResult{Token: token, User: u}, nil
}
