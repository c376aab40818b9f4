package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/logger"
)

func TestPreviewMember_MatchesCreateDerivation(t *testing.T) {
	repo := &mockMemberRepo{
		countJoinedInMonthFn: func(ctx context.Context, year int, month time.Month) (int64, error) {
			return 4, nil
		},
	}
	calc := newTestCalculator(t, map[string]string{"Quarterly": "3 months"})
	uc := NewPreviewMemberUseCase(repo, calc, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.PreviewMemberRequest{
		Plan:     "Quarterly",
		JoinDate: "2025-10-05",
	})
	require.NoError(t, err)

	assert.Equal(t, "5OC05", resp.Code)
	assert.Equal(t, "2026-01-05", resp.ExpiryDate)
}

func TestPreviewMember_PersistsNothing(t *testing.T) {
	created := false
	repo := &mockMemberRepo{
		createFn: func(ctx context.Context, m *member.Member) error {
			created = true
			return nil
		},
	}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewPreviewMemberUseCase(repo, calc, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.PreviewMemberRequest{
		Plan:     "Monthly",
		JoinDate: "2025-01-15",
	})
	require.NoError(t, err)
	assert.False(t, created, "preview must not persist a member")
}

func TestPreviewMember_Validation(t *testing.T) {
	repo := &mockMemberRepo{}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewPreviewMemberUseCase(repo, calc, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.PreviewMemberRequest{JoinDate: "2025-01-15"})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), dto.PreviewMemberRequest{Plan: "Monthly", JoinDate: "not-a-date"})
	assert.Error(t, err)
}
