package usecases

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

// ReminderSender delivers an expiry reminder to a single member.
type ReminderSender interface {
	SendExpiryReminder(to, memberName, planName string, expiryDate time.Time) error
}

// RemindExpiringUseCase emails active members whose membership expires within
// the configured lead window. Members without an email address are skipped;
// individual send failures are logged and do not abort the batch.
type RemindExpiringUseCase struct {
	memberRepo member.Repository
	sender     ReminderSender
	leadDays   int
	batchSize  int
	logger     logger.Interface
}

func NewRemindExpiringUseCase(
	memberRepo member.Repository,
	sender ReminderSender,
	leadDays int,
	batchSize int,
	logger logger.Interface,
) *RemindExpiringUseCase {
	if leadDays <= 0 {
		leadDays = 7
	}
	return &RemindExpiringUseCase{
		memberRepo: memberRepo,
		sender:     sender,
		leadDays:   leadDays,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// Execute sends reminders and returns the number delivered.
func (uc *RemindExpiringUseCase) Execute(ctx context.Context) (int, error) {
	from := biztime.Today()
	to := from.AddDate(0, 0, uc.leadDays)

	expiring, err := uc.memberRepo.ListExpiringBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring members: %w", err)
	}

	sent := 0
	for _, m := range expiring {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		if uc.batchSize > 0 && sent >= uc.batchSize {
			uc.logger.Infow("reminder batch size reached, deferring remainder",
				"batch_size", uc.batchSize,
				"remaining", len(expiring)-sent)
			break
		}
		if m.Email() == "" {
			continue
		}

		if err := uc.sender.SendExpiryReminder(m.Email(), m.Name(), m.PlanName(), m.ExpiryDate()); err != nil {
			uc.logger.Warnw("failed to send expiry reminder",
				"code", m.Code(),
				"error", err)
			continue
		}
		sent++
	}

	return sent, nil
}
