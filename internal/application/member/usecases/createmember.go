package usecases

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/domain/shared/events"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/constants"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

// CreateMemberUseCase derives the member code and expiry date and persists
// the new member. Both derived fields are computed server-side; a client-sent
// expiry date is ignored in favor of the plan-based computation.
type CreateMemberUseCase struct {
	memberRepo member.Repository
	expiryCalc *member.ExpiryCalculator
	publisher  events.EventPublisher // optional, can be nil
	logger     logger.Interface
}

func NewCreateMemberUseCase(
	memberRepo member.Repository,
	expiryCalc *member.ExpiryCalculator,
	logger logger.Interface,
) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		memberRepo: memberRepo,
		expiryCalc: expiryCalc,
		logger:     logger,
	}
}

// SetEventPublisher wires the optional creation event publisher.
func (uc *CreateMemberUseCase) SetEventPublisher(publisher events.EventPublisher) {
	uc.publisher = publisher
}

func (uc *CreateMemberUseCase) Execute(ctx context.Context, request dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	uc.logger.Infow("executing create member use case", "name", request.Name, "plan", request.Plan)

	// Field checks run in a fixed order so the first failure reported is
	// deterministic for the same request.
	if request.Name == "" {
		return nil, errors.NewValidationError("member name is required")
	}
	if request.Plan == "" {
		return nil, errors.NewValidationError("membership plan is required")
	}
	if request.Phone == "" {
		return nil, errors.NewValidationError("member phone is required")
	}
	if request.Email != "" {
		if err := utils.ValidateEmail(request.Email); err != nil {
			return nil, err
		}
	}

	joinDate, err := biztime.ParseDate(request.JoinDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid join date", err.Error())
	}

	status := vo.StatusActive
	if request.Status != "" {
		status, err = vo.ParseStatus(request.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid member status", err.Error())
		}
	}

	paymentStatus := vo.PaymentStatusUnpaid
	if request.PaymentStatus != "" {
		paymentStatus, err = vo.ParsePaymentStatus(request.PaymentStatus)
		if err != nil {
			return nil, errors.NewValidationError("invalid payment status", err.Error())
		}
	}

	expiryDate, err := uc.expiryCalc.ExpiryDate(ctx, joinDate, request.Plan)
	if err != nil {
		uc.logger.Errorw("failed to compute expiry date", "plan", request.Plan, "error", err)
		return nil, fmt.Errorf("failed to compute expiry date: %w", err)
	}

	if request.ExpiryDate != "" && request.ExpiryDate != biztime.FormatDate(expiryDate) {
		uc.logger.Warnw("ignoring client-supplied expiry date",
			"client_expiry", request.ExpiryDate,
			"computed_expiry", biztime.FormatDate(expiryDate))
	}

	created, err := uc.createWithAllocatedCode(ctx, request, joinDate, expiryDate, status, paymentStatus)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("member created successfully",
		"code", created.Code(),
		"plan", created.PlanName(),
		"expiry_date", biztime.FormatDate(created.ExpiryDate()))

	if uc.publisher != nil {
		event := member.NewCreatedEvent(created)
		if err := uc.publisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish member created event", "code", created.Code(), "error", err)
		}
	}

	return toMemberResponse(created), nil
}

// createWithAllocatedCode allocates the next sequence number for the join
// month, encodes the member code and inserts. A duplicate-code conflict from
// a concurrent insert re-reads the count and retries a bounded number of
// times; the unique index on the code column is the arbiter.
func (uc *CreateMemberUseCase) createWithAllocatedCode(
	ctx context.Context,
	request dto.CreateMemberRequest,
	joinDate, expiryDate time.Time,
	status vo.Status,
	paymentStatus vo.PaymentStatus,
) (*member.Member, error) {
	var lastErr error

	for attempt := 0; attempt < constants.CodeAllocationRetries; attempt++ {
		count, err := uc.memberRepo.CountJoinedInMonth(ctx, joinDate.Year(), joinDate.Month())
		if err != nil {
			return nil, fmt.Errorf("failed to count members in join month: %w", err)
		}

		code := vo.EncodeMemberCode(joinDate, int(count)+1)

		entity, err := member.NewMember(
			code,
			request.Name,
			request.Email,
			request.Phone,
			request.Plan,
			joinDate,
			expiryDate,
			status,
			paymentStatus,
			request.PaymentAmount,
		)
		if err != nil {
			return nil, errors.NewValidationError("invalid member", err.Error())
		}

		if err := uc.memberRepo.Create(ctx, entity); err != nil {
			if errors.IsConflictError(err) {
				uc.logger.Warnw("member code collision, retrying allocation",
					"code", code,
					"attempt", attempt+1)
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to save member: %w", err)
		}

		return entity, nil
	}

	uc.logger.Errorw("member code allocation exhausted retries",
		"retries", constants.CodeAllocationRetries,
		"error", lastErr)
	return nil, errors.NewConflictError("could not allocate a unique member code, please retry")
}
