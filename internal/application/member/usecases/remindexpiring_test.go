package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

// reminderSenderFunc adapts a function to the ReminderSender interface.
type reminderSenderFunc func(to, memberName, planName string, expiryDate time.Time) error

func (f reminderSenderFunc) SendExpiryReminder(to, memberName, planName string, expiryDate time.Time) error {
	return f(to, memberName, planName, expiryDate)
}

func reconstructTestMember(t *testing.T, code, email string, expiry time.Time) *member.Member {
	t.Helper()
	m, err := member.ReconstructMember(
		1, code, "Casey Fox", email, "555-0100", "Monthly",
		expiry.AddDate(0, -1, 0), expiry,
		vo.StatusActive, vo.PaymentStatusPaid, 4900,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return m
}

func TestRemindExpiring_SkipsMembersWithoutEmail(t *testing.T) {
	expiry := biztime.Today().AddDate(0, 0, 3)
	repo := &mockMemberRepo{
		listExpiringFn: func(ctx context.Context, from, to time.Time) ([]*member.Member, error) {
			return []*member.Member{
				reconstructTestMember(t, "5JA01", "casey@example.com", expiry),
				reconstructTestMember(t, "5JA02", "", expiry),
				reconstructTestMember(t, "5JA03", "robin@example.com", expiry),
			}, nil
		},
	}

	var sentTo []string
	sender := reminderSenderFunc(func(to, memberName, planName string, expiryDate time.Time) error {
		sentTo = append(sentTo, to)
		return nil
	})

	uc := NewRemindExpiringUseCase(repo, sender, 7, 0, logger.NewLogger())

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"casey@example.com", "robin@example.com"}, sentTo)
}

func TestRemindExpiring_WindowIsTodayPlusLeadDays(t *testing.T) {
	var gotFrom, gotTo time.Time
	repo := &mockMemberRepo{
		listExpiringFn: func(ctx context.Context, from, to time.Time) ([]*member.Member, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	sender := reminderSenderFunc(func(to, memberName, planName string, expiryDate time.Time) error {
		return nil
	})

	uc := NewRemindExpiringUseCase(repo, sender, 10, 0, logger.NewLogger())

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, gotFrom.Equal(biztime.Today()))
	assert.True(t, gotTo.Equal(biztime.Today().AddDate(0, 0, 10)))
}

func TestRemindExpiring_SendFailureDoesNotStopBatch(t *testing.T) {
	expiry := biztime.Today().AddDate(0, 0, 2)
	repo := &mockMemberRepo{
		listExpiringFn: func(ctx context.Context, from, to time.Time) ([]*member.Member, error) {
			return []*member.Member{
				reconstructTestMember(t, "5JA01", "a@example.com", expiry),
				reconstructTestMember(t, "5JA02", "b@example.com", expiry),
			}, nil
		},
	}

	calls := 0
	sender := reminderSenderFunc(func(to, memberName, planName string, expiryDate time.Time) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("smtp timeout")
		}
		return nil
	})

	uc := NewRemindExpiringUseCase(repo, sender, 7, 0, logger.NewLogger())

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, calls)
}

func TestRemindExpiring_BatchSizeCapsDeliveries(t *testing.T) {
	expiry := biztime.Today().AddDate(0, 0, 1)
	repo := &mockMemberRepo{
		listExpiringFn: func(ctx context.Context, from, to time.Time) ([]*member.Member, error) {
			members := make([]*member.Member, 5)
			for i := range members {
				members[i] = reconstructTestMember(t, fmt.Sprintf("5JA0%d", i+1), fmt.Sprintf("m%d@example.com", i), expiry)
			}
			return members, nil
		},
	}

	sent := 0
	sender := reminderSenderFunc(func(to, memberName, planName string, expiryDate time.Time) error {
		sent++
		return nil
	})

	uc := NewRemindExpiringUseCase(repo, sender, 7, 2, logger.NewLogger())

	n, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, sent)
}
