package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/application/auth/dto"
	"gymdesk/internal/domain/adminuser"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

// Token is the issued access token.
type Token struct {
	AccessToken string
	ExpiresIn   int64
}

// TokenIssuer signs access tokens for authenticated operators.
type TokenIssuer interface {
	Generate(email, name string) (*Token, error)
}

// LoginUseCase authenticates a back-office operator. All failure modes
// surface the same unauthorized error so callers cannot probe which emails
// have accounts.
type LoginUseCase struct {
	adminRepo adminuser.Repository
	hasher    adminuser.PasswordHasher
	tokens    TokenIssuer
	logger    logger.Interface
}

func NewLoginUseCase(
	adminRepo adminuser.Repository,
	hasher adminuser.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, request dto.LoginRequest) (*dto.LoginResponse, error) {
	if request.Email == "" || request.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.adminRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}
	if u == nil {
		uc.logger.Warnw("login attempt for unknown email", "email", request.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(request.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "email", request.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(u.Email(), u.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	uc.logger.Infow("admin logged in", "email", u.Email())

	return &dto.LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
		Name:        u.Name(),
		Email:       u.Email(),
	}, nil
}
