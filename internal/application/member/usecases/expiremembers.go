package usecases

import (
	"context"
	"fmt"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/notification"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

// ExpireMembersUseCase is the nightly sweep that flips active members whose
// expiry date has passed into the expired status. Expiry day itself still
// counts as active; only dates strictly before today expire.
type ExpireMembersUseCase struct {
	memberRepo member.Repository
	emitter    notification.Emitter // optional, can be nil
	logger     logger.Interface
}

func NewExpireMembersUseCase(memberRepo member.Repository, logger logger.Interface) *ExpireMembersUseCase {
	return &ExpireMembersUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// SetEmitter wires the optional back-office notification emitter.
func (uc *ExpireMembersUseCase) SetEmitter(emitter notification.Emitter) {
	uc.emitter = emitter
}

// Execute marks lapsed members expired and returns the number updated.
func (uc *ExpireMembersUseCase) Execute(ctx context.Context) (int, error) {
	cutoff := biztime.Today()

	count, err := uc.memberRepo.MarkExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired members: %w", err)
	}

	if count > 0 {
		uc.logger.Infow("members marked expired", "count", count, "cutoff", biztime.FormatDate(cutoff))
		if uc.emitter != nil {
			uc.emitter.Emit(
				"Memberships expired",
				fmt.Sprintf("%d membership(s) lapsed before %s and were marked expired.",
					count, biztime.FormatDate(cutoff)),
				notification.SeverityWarning,
			)
		}
	}

	return int(count), nil
}
