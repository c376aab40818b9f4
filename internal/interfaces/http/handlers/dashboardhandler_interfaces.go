package handlers

import (
	"context"

	"gymdesk/internal/application/dashboard/dto"
)

// Use case interfaces for DashboardHandler

type getDashboardUseCase interface {
	Execute(ctx context.Context) (*dto.SummaryResponse, error)
}
