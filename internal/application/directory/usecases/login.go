package usecases

import (
	"context"
	"strings"

	"claimdesk/internal/domain/directory"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
// Satisfied by the bcrypt hasher.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer mints a signed token pair for an authenticated user.
// Satisfied by an adapter over the JWT service.
type TokenIssuer interface {
	Issue(userID uint, name, area, role string) (accessToken, refreshToken string, expiresIn int64, err error)
}

type LoginUseCase struct {
	users    directory.UserDirectory
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	users directory.UserDirectory,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		users:    users,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Warnw("login attempt for unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !user.IsActive() {
		uc.logger.Warnw("login attempt for deactivated user", "user_id", user.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.verifier.Verify(cmd.Password, user.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", user.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	area := ""
	if user.Area() != nil {
		area = *user.Area()
	}

	access, refresh, expiresIn, err := uc.issuer.Issue(user.ID(), user.Name(), area, user.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", user.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", user.ID(), "role", user.Role())

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		UserID:       user.ID(),
		Name:         user.Name(),
		Role:         user.Role(),
	}, nil
}
