package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type mockMemberRepo struct {
	createFn             func(ctx context.Context, m *member.Member) error
	getByCodeFn          func(ctx context.Context, code string) (*member.Member, error)
	listFn               func(ctx context.Context, filter member.ListFilter) ([]*member.Member, int64, error)
	listAllFn            func(ctx context.Context) ([]*member.Member, error)
	updateFn             func(ctx context.Context, m *member.Member) error
	deleteByCodeFn       func(ctx context.Context, code string) error
	countJoinedInMonthFn func(ctx context.Context, year int, month time.Month) (int64, error)
	listExpiringFn       func(ctx context.Context, from, to time.Time) ([]*member.Member, error)
	markExpiredFn        func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockMemberRepo) Create(ctx context.Context, mem *member.Member) error {
	if m.createFn != nil {
		return m.createFn(ctx, mem)
	}
	return nil
}

func (m *mockMemberRepo) GetByCode(ctx context.Context, code string) (*member.Member, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockMemberRepo) List(ctx context.Context, filter member.ListFilter) ([]*member.Member, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockMemberRepo) ListAll(ctx context.Context) ([]*member.Member, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockMemberRepo) Update(ctx context.Context, mem *member.Member) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, mem)
	}
	return nil
}

func (m *mockMemberRepo) DeleteByCode(ctx context.Context, code string) error {
	if m.deleteByCodeFn != nil {
		return m.deleteByCodeFn(ctx, code)
	}
	return nil
}

func (m *mockMemberRepo) CountJoinedInMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	if m.countJoinedInMonthFn != nil {
		return m.countJoinedInMonthFn(ctx, year, month)
	}
	return 0, nil
}

func (m *mockMemberRepo) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*member.Member, error) {
	if m.listExpiringFn != nil {
		return m.listExpiringFn(ctx, from, to)
	}
	return nil, nil
}

func (m *mockMemberRepo) MarkExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.markExpiredFn != nil {
		return m.markExpiredFn(ctx, cutoff)
	}
	return 0, nil
}

type mockPlanRepo struct {
	plans map[string]*plan.Plan
}

func (m *mockPlanRepo) Create(ctx context.Context, p *plan.Plan) error            { return nil }
func (m *mockPlanRepo) GetByID(ctx context.Context, id uint) (*plan.Plan, error)  { return nil, nil }
func (m *mockPlanRepo) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	return m.plans[name], nil
}
func (m *mockPlanRepo) List(ctx context.Context, page, pageSize int) ([]*plan.Plan, int64, error) {
	return nil, 0, nil
}
func (m *mockPlanRepo) ListAll(ctx context.Context) ([]*plan.Plan, error) { return nil, nil }
func (m *mockPlanRepo) Update(ctx context.Context, p *plan.Plan) error    { return nil }
func (m *mockPlanRepo) Delete(ctx context.Context, id uint) error         { return nil }

func newTestCalculator(t *testing.T, durations map[string]string) *member.ExpiryCalculator {
	t.Helper()
	plans := make(map[string]*plan.Plan, len(durations))
	for name, duration := range durations {
		p, err := plan.NewPlan(name, 4900, duration, "")
		require.NoError(t, err)
		plans[name] = p
	}
	return member.NewExpiryCalculator(&mockPlanRepo{plans: plans}, logger.NewLogger())
}

func validCreateRequest() dto.CreateMemberRequest {
	return dto.CreateMemberRequest{
		Name:     "Jordan Riley",
		Phone:    "555-0101",
		Plan:     "Monthly",
		JoinDate: "2025-01-15",
	}
}

func TestCreateMember_FirstOfMonth(t *testing.T) {
	repo := &mockMemberRepo{}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "5JA01", resp.Code)
	assert.Equal(t, "2025-01-15", resp.JoinDate)
	assert.Equal(t, "2025-02-15", resp.ExpiryDate)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
}

func TestCreateMember_DecemberAnnual(t *testing.T) {
	repo := &mockMemberRepo{}
	calc := newTestCalculator(t, map[string]string{"Annual": "1 year"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	req := validCreateRequest()
	req.Plan = "Annual"
	req.JoinDate = "2025-12-01"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "5DE01", resp.Code)
	assert.Equal(t, "2026-12-01", resp.ExpiryDate)
}

func TestCreateMember_SequenceFollowsMonthCount(t *testing.T) {
	var gotYear int
	var gotMonth time.Month
	repo := &mockMemberRepo{
		countJoinedInMonthFn: func(ctx context.Context, year int, month time.Month) (int64, error) {
			gotYear, gotMonth = year, month
			return 41, nil
		},
	}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	req := validCreateRequest()
	req.JoinDate = "2025-06-10"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "5JN42", resp.Code)
	assert.Equal(t, 2025, gotYear)
	assert.Equal(t, time.June, gotMonth)
}

func TestCreateMember_ClientExpiryIgnored(t *testing.T) {
	repo := &mockMemberRepo{}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	req := validCreateRequest()
	req.ExpiryDate = "2099-12-31"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2025-02-15", resp.ExpiryDate)
}

func TestCreateMember_UnknownPlanUsesDefaultTerm(t *testing.T) {
	repo := &mockMemberRepo{}
	calc := newTestCalculator(t, nil)
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "2025-02-15", resp.ExpiryDate)
}

func TestCreateMember_ValidationOrder(t *testing.T) {
	repo := &mockMemberRepo{}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	tests := []struct {
		name    string
		mutate  func(*dto.CreateMemberRequest)
		wantMsg string
	}{
		{"missing name reported before plan", func(r *dto.CreateMemberRequest) {
			r.Name = ""
			r.Plan = ""
			r.Phone = ""
		}, "member name is required"},
		{"missing plan reported before phone", func(r *dto.CreateMemberRequest) {
			r.Plan = ""
			r.Phone = ""
		}, "membership plan is required"},
		{"missing phone", func(r *dto.CreateMemberRequest) {
			r.Phone = ""
		}, "member phone is required"},
		{"bad join date", func(r *dto.CreateMemberRequest) {
			r.JoinDate = "15/01/2025"
		}, "invalid join date"},
		{"bad status", func(r *dto.CreateMemberRequest) {
			r.Status = "frozen"
		}, "invalid member status"},
		{"bad payment status", func(r *dto.CreateMemberRequest) {
			r.PaymentStatus = "pending"
		}, "invalid payment status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestCreateMember_ConflictRetriesWithFreshCount(t *testing.T) {
	count := int64(0)
	var createdCodes []string
	repo := &mockMemberRepo{
		countJoinedInMonthFn: func(ctx context.Context, year int, month time.Month) (int64, error) {
			return count, nil
		},
		createFn: func(ctx context.Context, m *member.Member) error {
			createdCodes = append(createdCodes, m.Code())
			if len(createdCodes) == 1 {
				// Simulate a concurrent insert winning the first code.
				count++
				return errors.NewConflictError("member code already exists")
			}
			return nil
		},
	}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"5JA01", "5JA02"}, createdCodes)
	assert.Equal(t, "5JA02", resp.Code)
}

func TestCreateMember_ConflictRetriesExhausted(t *testing.T) {
	attempts := 0
	repo := &mockMemberRepo{
		createFn: func(ctx context.Context, m *member.Member) error {
			attempts++
			return errors.NewConflictError("member code already exists")
		},
	}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 3, attempts)
}

func TestCreateMember_NonConflictCreateErrorFailsFast(t *testing.T) {
	attempts := 0
	repo := &mockMemberRepo{
		createFn: func(ctx context.Context, m *member.Member) error {
			attempts++
			return fmt.Errorf("connection lost")
		},
	}
	calc := newTestCalculator(t, map[string]string{"Monthly": "1 month"})
	uc := NewCreateMemberUseCase(repo, calc, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
