package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gymdesk/internal/application/dashboard/dto"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

const trailingMonths = 12

// SummaryCache is the optional cache port for the computed summary. A nil
// cache disables caching; cache failures degrade to recomputation.
type SummaryCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
}

// GetDashboardUseCase aggregates the back-office summary: member counts, the
// expiring-this-month panel and a trailing twelve-month finance series.
//
// Expiry dates are recomputed here from each member's join date and plan
// duration through the same derivation the create path uses, rather than
// trusting stored values, so the panel and the creation flow can never
// disagree about when a membership ends.
type GetDashboardUseCase struct {
	memberRepo  member.Repository
	planRepo    plan.Repository
	expenseRepo expense.Repository
	staffRepo   staff.Repository
	cache       SummaryCache
	logger      logger.Interface
}

func NewGetDashboardUseCase(
	memberRepo member.Repository,
	planRepo plan.Repository,
	expenseRepo expense.Repository,
	staffRepo staff.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		memberRepo:  memberRepo,
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// SetCache wires the optional summary cache.
func (uc *GetDashboardUseCase) SetCache(cache SummaryCache) {
	uc.cache = cache
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.SummaryResponse, error) {
	if uc.cache != nil {
		payload, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warnw("dashboard cache read failed, recomputing", "error", err)
		} else if payload != nil {
			var cached dto.SummaryResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			uc.logger.Warnw("dashboard cache payload corrupt, recomputing", "error", err)
		}
	}

	summary, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := uc.cache.Set(ctx, payload); err != nil {
				uc.logger.Warnw("dashboard cache write failed", "error", err)
			}
		}
	}

	return summary, nil
}

func (uc *GetDashboardUseCase) compute(ctx context.Context) (*dto.SummaryResponse, error) {
	members, err := uc.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	plans, err := uc.planRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}

	durations := make(map[string]string, len(plans))
	for _, p := range plans {
		durations[p.Name()] = p.Duration()
	}

	today := biztime.Today()
	windowStart := biztime.MonthsAgo(today, trailingMonths-1)

	summary := &dto.SummaryResponse{
		ExpiringThisMonth: []dto.ExpiringMember{},
		GeneratedAt:       biztime.NowUTC().Format(time.RFC3339),
	}

	revenueByMonth := make(map[string]uint64)

	for _, m := range members {
		summary.TotalMembers++
		switch m.Status() {
		case vo.StatusActive:
			summary.ActiveMembers++
		case vo.StatusExpired:
			summary.ExpiredMembers++
		}
		if m.PaymentStatus() == vo.PaymentStatusUnpaid {
			summary.UnpaidMembers++
		}

		// An unknown plan name yields the default term, same as creation.
		expiry := member.ExpiryFromDuration(m.JoinDate(), durations[m.PlanName()])

		if biztime.SameMonth(expiry, today) && m.Status() == vo.StatusActive {
			summary.ExpiringThisMonth = append(summary.ExpiringThisMonth, dto.ExpiringMember{
				Code:          m.Code(),
				Name:          m.Name(),
				Plan:          m.PlanName(),
				ExpiryDate:    biztime.FormatDate(expiry),
				DaysRemaining: biztime.DaysBetween(today, expiry),
			})
		}

		if m.PaymentStatus() == vo.PaymentStatusPaid && !m.JoinDate().Before(windowStart) {
			revenueByMonth[monthKey(m.JoinDate())] += m.PaymentAmount()
		}
	}

	// Ties keep repository order, which is what the panel promises.
	sort.SliceStable(summary.ExpiringThisMonth, func(i, j int) bool {
		return summary.ExpiringThisMonth[i].DaysRemaining < summary.ExpiringThisMonth[j].DaysRemaining
	})

	expensesByMonth, err := uc.expensesByMonth(ctx, windowStart, today)
	if err != nil {
		return nil, err
	}

	summary.Monthly = make([]dto.MonthlyFinance, 0, trailingMonths)
	for i := 0; i < trailingMonths; i++ {
		month := windowStart.AddDate(0, i, 0)
		key := monthKey(month)
		revenue := revenueByMonth[key]
		expenses := expensesByMonth[key]
		summary.Monthly = append(summary.Monthly, dto.MonthlyFinance{
			Month:    key,
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   int64(revenue) - int64(expenses),
		})
	}

	return summary, nil
}

// expensesByMonth buckets recorded expenses by month and adds the active
// staff payroll to every month of the window.
func (uc *GetDashboardUseCase) expensesByMonth(ctx context.Context, windowStart, today time.Time) (map[string]uint64, error) {
	windowEnd := biztime.StartOfMonth(today).AddDate(0, 1, -1)

	expenses, err := uc.expenseRepo.ListIncurredBetween(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	byMonth := make(map[string]uint64)
	for _, e := range expenses {
		byMonth[monthKey(e.IncurredOn())] += e.Amount()
	}

	activeStaff, err := uc.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	var payroll uint64
	for _, s := range activeStaff {
		payroll += s.Salary()
	}
	if payroll > 0 {
		for i := 0; i < trailingMonths; i++ {
			byMonth[monthKey(windowStart.AddDate(0, i, 0))] += payroll
		}
	}

	return byMonth, nil
}

func monthKey(t time.Time) string {
	return t.In(biztime.Location()).Format("2006-01")
}
