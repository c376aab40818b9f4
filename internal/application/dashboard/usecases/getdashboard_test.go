package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/application/dashboard/dto"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

type stubMemberRepo struct {
	member.Repository
	members   []*member.Member
	err       error
	listCalls int
}

func (r *stubMemberRepo) ListAll(ctx context.Context) ([]*member.Member, error) {
	r.listCalls++
	return r.members, r.err
}

type stubPlanRepo struct {
	plan.Repository
	plans []*plan.Plan
}

func (r *stubPlanRepo) ListAll(ctx context.Context) ([]*plan.Plan, error) {
	return r.plans, nil
}

type stubExpenseRepo struct {
	expense.Repository
	expenses []*expense.Expense
}

func (r *stubExpenseRepo) ListIncurredBetween(ctx context.Context, from, to time.Time) ([]*expense.Expense, error) {
	return r.expenses, nil
}

type stubStaffRepo struct {
	staff.Repository
	active []*staff.Staff
}

func (r *stubStaffRepo) ListActive(ctx context.Context) ([]*staff.Staff, error) {
	return r.active, nil
}

type stubCache struct {
	payload []byte
	getErr  error
	stored  []byte
	setErr  error
}

func (c *stubCache) Get(ctx context.Context) ([]byte, error) { return c.payload, c.getErr }
func (c *stubCache) Set(ctx context.Context, payload []byte) error {
	c.stored = payload
	return c.setErr
}

var fixtureID uint

func fixtureMember(t *testing.T, planName string, joinDate time.Time, status vo.Status, payment vo.PaymentStatus, amount uint64) *member.Member {
	t.Helper()
	fixtureID++
	m, err := member.ReconstructMember(
		fixtureID, fmt.Sprintf("5JA%02d", fixtureID), "Alex Doe", "", "555-0100", planName,
		joinDate, joinDate.AddDate(0, 1, 0),
		status, payment, amount,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return m
}

func monthlyPlan(t *testing.T) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan("Monthly", 4900, "1 month", "")
	require.NoError(t, err)
	return p
}

func newSummaryUseCase(members *stubMemberRepo, plans *stubPlanRepo, expenses *stubExpenseRepo, staffRepo *stubStaffRepo) *GetDashboardUseCase {
	return NewGetDashboardUseCase(members, plans, expenses, staffRepo, logger.NewLogger())
}

func TestGetDashboard_MemberCounts(t *testing.T) {
	join := biztime.StartOfMonth(biztime.Today())
	repo := &stubMemberRepo{members: []*member.Member{
		fixtureMember(t, "Monthly", join, vo.StatusActive, vo.PaymentStatusPaid, 4900),
		fixtureMember(t, "Monthly", join, vo.StatusActive, vo.PaymentStatusUnpaid, 4900),
		fixtureMember(t, "Monthly", join.AddDate(0, -3, 0), vo.StatusExpired, vo.PaymentStatusPaid, 4900),
	}}
	uc := newSummaryUseCase(repo, &stubPlanRepo{plans: []*plan.Plan{monthlyPlan(t)}}, &stubExpenseRepo{}, &stubStaffRepo{})

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalMembers)
	assert.Equal(t, int64(2), summary.ActiveMembers)
	assert.Equal(t, int64(1), summary.ExpiredMembers)
	assert.Equal(t, int64(1), summary.UnpaidMembers)
	assert.NotEmpty(t, summary.GeneratedAt)
}

func TestGetDashboard_ExpiringPanel(t *testing.T) {
	today := biztime.Today()
	// Join dates one month back so a one-month plan ends this month. Day
	// offsets stay under 28 so AddDate never normalizes across a month.
	prevMonth := biztime.StartOfMonth(today).AddDate(0, -1, 0)
	joinEarly := prevMonth.AddDate(0, 0, 4)  // expires on the 5th
	joinLate := prevMonth.AddDate(0, 0, 19)  // expires on the 20th

	repo := &stubMemberRepo{members: []*member.Member{
		fixtureMember(t, "Monthly", joinLate, vo.StatusActive, vo.PaymentStatusPaid, 4900),
		fixtureMember(t, "Monthly", joinEarly, vo.StatusActive, vo.PaymentStatusPaid, 4900),
		// Expired members never show in the panel even when the derived
		// expiry lands this month.
		fixtureMember(t, "Monthly", joinEarly, vo.StatusExpired, vo.PaymentStatusPaid, 4900),
	}}
	uc := newSummaryUseCase(repo, &stubPlanRepo{plans: []*plan.Plan{monthlyPlan(t)}}, &stubExpenseRepo{}, &stubStaffRepo{})

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.ExpiringThisMonth, 2)

	early, late := joinEarly.AddDate(0, 1, 0), joinLate.AddDate(0, 1, 0)
	assert.Equal(t, biztime.FormatDate(early), summary.ExpiringThisMonth[0].ExpiryDate)
	assert.Equal(t, biztime.FormatDate(late), summary.ExpiringThisMonth[1].ExpiryDate)
	assert.Equal(t, biztime.DaysBetween(today, early), summary.ExpiringThisMonth[0].DaysRemaining)
	assert.Equal(t, biztime.DaysBetween(today, late), summary.ExpiringThisMonth[1].DaysRemaining)
}

func TestGetDashboard_UnknownPlanFallsBackToDefaultTerm(t *testing.T) {
	today := biztime.Today()
	join := biztime.StartOfMonth(today).AddDate(0, -1, 10)

	repo := &stubMemberRepo{members: []*member.Member{
		fixtureMember(t, "Legacy Gold", join, vo.StatusActive, vo.PaymentStatusPaid, 4900),
	}}
	uc := newSummaryUseCase(repo, &stubPlanRepo{}, &stubExpenseRepo{}, &stubStaffRepo{})

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.ExpiringThisMonth, 1)
	assert.Equal(t, biztime.FormatDate(join.AddDate(0, 1, 0)), summary.ExpiringThisMonth[0].ExpiryDate)
}

func TestGetDashboard_MonthlySeries(t *testing.T) {
	today := biztime.Today()
	join := biztime.StartOfMonth(today)

	repo := &stubMemberRepo{members: []*member.Member{
		fixtureMember(t, "Monthly", join, vo.StatusActive, vo.PaymentStatusPaid, 4900),
		// Unpaid joins contribute no revenue.
		fixtureMember(t, "Monthly", join, vo.StatusActive, vo.PaymentStatusUnpaid, 4900),
	}}

	exp, err := expense.NewExpense("new treadmill", "equipment", 500, today)
	require.NoError(t, err)

	trainer, err := staff.NewStaff("Sam Lee", "sam@example.com", "555-0199", staff.RoleTrainer, 100000, today.AddDate(-1, 0, 0))
	require.NoError(t, err)

	uc := newSummaryUseCase(repo,
		&stubPlanRepo{plans: []*plan.Plan{monthlyPlan(t)}},
		&stubExpenseRepo{expenses: []*expense.Expense{exp}},
		&stubStaffRepo{active: []*staff.Staff{trainer}},
	)

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Monthly, 12)

	first := summary.Monthly[0]
	assert.Equal(t, biztime.MonthsAgo(today, 11).Format("2006-01"), first.Month)
	assert.Equal(t, uint64(100000), first.Expenses, "payroll applies to every month of the window")

	current := summary.Monthly[11]
	assert.Equal(t, today.Format("2006-01"), current.Month)
	assert.Equal(t, uint64(4900), current.Revenue)
	assert.Equal(t, uint64(100500), current.Expenses)
	assert.Equal(t, int64(4900)-int64(100500), current.Profit)
}

func TestGetDashboard_CacheHitSkipsComputation(t *testing.T) {
	cached := &dto.SummaryResponse{TotalMembers: 42, GeneratedAt: "2025-06-01T00:00:00Z"}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	repo := &stubMemberRepo{}
	uc := newSummaryUseCase(repo, &stubPlanRepo{}, &stubExpenseRepo{}, &stubStaffRepo{})
	uc.SetCache(&stubCache{payload: payload})

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.TotalMembers)
	assert.Zero(t, repo.listCalls)
}

func TestGetDashboard_CorruptCacheRecomputesAndStores(t *testing.T) {
	repo := &stubMemberRepo{}
	cache := &stubCache{payload: []byte("{not json")}
	uc := newSummaryUseCase(repo, &stubPlanRepo{}, &stubExpenseRepo{}, &stubStaffRepo{})
	uc.SetCache(cache)

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	assert.NotEmpty(t, cache.stored, "recomputed summary should be written back")
}

func TestGetDashboard_CacheErrorsDegradeToComputation(t *testing.T) {
	repo := &stubMemberRepo{}
	cache := &stubCache{getErr: fmt.Errorf("connection refused"), setErr: fmt.Errorf("connection refused")}
	uc := newSummaryUseCase(repo, &stubPlanRepo{}, &stubExpenseRepo{}, &stubStaffRepo{})
	uc.SetCache(cache)

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, 1, repo.listCalls)
}

func TestGetDashboard_MemberLoadFailure(t *testing.T) {
	repo := &stubMemberRepo{err: fmt.Errorf("connection reset")}
	uc := newSummaryUseCase(repo, &stubPlanRepo{}, &stubExpenseRepo{}, &stubStaffRepo{})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
