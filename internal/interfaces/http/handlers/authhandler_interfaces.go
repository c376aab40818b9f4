package handlers

import (
	"context"

	"gymdesk/internal/application/auth/dto"
)

// Use case interfaces for AuthHandler

type loginUseCase interface {
	Execute(ctx context.Context, request dto.LoginRequest) (*dto.LoginResponse, error)
}
