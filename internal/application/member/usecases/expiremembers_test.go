package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/notification"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

type recordingEmitter struct {
	titles     []string
	severities []notification.Severity
}

func (e *recordingEmitter) Emit(title, message string, severity notification.Severity) {
	e.titles = append(e.titles, title)
	e.severities = append(e.severities, severity)
}

func TestExpireMembers_CutoffIsStartOfToday(t *testing.T) {
	var gotCutoff time.Time
	repo := &mockMemberRepo{
		markExpiredFn: func(ctx context.Context, cutoff time.Time) (int64, error) {
			gotCutoff = cutoff
			return 3, nil
		},
	}
	uc := NewExpireMembersUseCase(repo, logger.NewLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.True(t, gotCutoff.Equal(biztime.Today()), "cutoff = %v, want %v", gotCutoff, biztime.Today())
}

func TestExpireMembers_EmitsNotificationWhenMembersExpired(t *testing.T) {
	repo := &mockMemberRepo{
		markExpiredFn: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 2, nil
		},
	}
	uc := NewExpireMembersUseCase(repo, logger.NewLogger())

	emitter := &recordingEmitter{}
	uc.SetEmitter(emitter)

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, emitter.titles, 1)
	assert.Equal(t, "Memberships expired", emitter.titles[0])
	assert.Equal(t, notification.SeverityWarning, emitter.severities[0])
}

func TestExpireMembers_NoNotificationWhenNothingExpired(t *testing.T) {
	repo := &mockMemberRepo{}
	uc := NewExpireMembersUseCase(repo, logger.NewLogger())

	emitter := &recordingEmitter{}
	uc.SetEmitter(emitter)

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, count)
	assert.Empty(t, emitter.titles)
}

func TestExpireMembers_RepositoryError(t *testing.T) {
	repo := &mockMemberRepo{
		markExpiredFn: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, fmt.Errorf("deadlock")
		},
	}
	uc := NewExpireMembersUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}

