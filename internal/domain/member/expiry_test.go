package member

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/logger"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestExpiryFromDuration(t *testing.T) {
	tests := []struct {
		name     string
		joinDate time.Time
		duration string
		want     time.Time
	}{
		{"one year", day(2025, time.January, 15), "1 year", day(2026, time.January, 15)},
		{"yearly keyword alone", day(2025, time.January, 15), "year", day(2026, time.January, 15)},
		{"two years still adds one", day(2025, time.January, 15), "2 years", day(2026, time.January, 15)},
		{"one month", day(2025, time.March, 10), "1 month", day(2025, time.April, 10)},
		{"three months crosses year", day(2025, time.October, 5), "3 months", day(2026, time.January, 5)},
		{"six months", day(2025, time.January, 31), "6 months", day(2025, time.July, 31)},
		{"month keyword without number", day(2025, time.March, 10), "month", day(2025, time.April, 10)},
		{"zero months falls back to one", day(2025, time.March, 10), "0 months", day(2025, time.April, 10)},
		{"unknown descriptor", day(2025, time.March, 10), "unlimited", day(2025, time.April, 10)},
		{"empty descriptor", day(2025, time.March, 10), "", day(2025, time.April, 10)},
		{"case and whitespace ignored", day(2025, time.March, 10), "  1 Year ", day(2026, time.March, 10)},
		{"leap day plus one year normalizes", day(2024, time.February, 29), "1 year", day(2025, time.March, 1)},
		{"jan 31 plus one month normalizes", day(2025, time.January, 31), "1 month", day(2025, time.March, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpiryFromDuration(tt.joinDate, tt.duration)
			if !got.Equal(tt.want) {
				t.Errorf("ExpiryFromDuration(%v, %q) = %v, want %v",
					tt.joinDate, tt.duration, got, tt.want)
			}
		})
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3 months", 3},
		{"12 months", 12},
		{"month", 0},
		{"", 0},
		{"0 months", 0},
		{" 3 months", 0},
	}

	for _, tt := range tests {
		if got := leadingInt(tt.in); got != tt.want {
			t.Errorf("leadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

type stubPlanRepo struct {
	plans map[string]*plan.Plan
	err   error
}

func (s *stubPlanRepo) Create(ctx context.Context, p *plan.Plan) error      { return nil }
func (s *stubPlanRepo) GetByID(ctx context.Context, id uint) (*plan.Plan, error) { return nil, nil }
func (s *stubPlanRepo) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plans[name], nil
}
func (s *stubPlanRepo) List(ctx context.Context, page, pageSize int) ([]*plan.Plan, int64, error) {
	return nil, 0, nil
}
func (s *stubPlanRepo) ListAll(ctx context.Context) ([]*plan.Plan, error) { return nil, nil }
func (s *stubPlanRepo) Update(ctx context.Context, p *plan.Plan) error    { return nil }
func (s *stubPlanRepo) Delete(ctx context.Context, id uint) error         { return nil }

func testPlan(t *testing.T, name, duration string) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(name, 4900, duration, "")
	if err != nil {
		t.Fatalf("NewPlan(%q): %v", name, err)
	}
	return p
}

func TestExpiryCalculator_PlanFound(t *testing.T) {
	repo := &stubPlanRepo{plans: map[string]*plan.Plan{
		"Annual": testPlan(t, "Annual", "1 year"),
	}}
	calc := NewExpiryCalculator(repo, logger.NewLogger())

	got, err := calc.ExpiryDate(context.Background(), day(2025, time.January, 15), "Annual")
	if err != nil {
		t.Fatalf("ExpiryDate: %v", err)
	}
	if want := day(2026, time.January, 15); !got.Equal(want) {
		t.Errorf("ExpiryDate = %v, want %v", got, want)
	}
}

func TestExpiryCalculator_PlanMissingUsesDefaultTerm(t *testing.T) {
	calc := NewExpiryCalculator(&stubPlanRepo{}, logger.NewLogger())

	got, err := calc.ExpiryDate(context.Background(), day(2025, time.March, 10), "Ghost")
	if err != nil {
		t.Fatalf("ExpiryDate: %v", err)
	}
	if want := day(2025, time.April, 10); !got.Equal(want) {
		t.Errorf("ExpiryDate = %v, want %v", got, want)
	}
}

func TestExpiryCalculator_RepositoryErrorPropagates(t *testing.T) {
	calc := NewExpiryCalculator(&stubPlanRepo{err: fmt.Errorf("connection lost")}, logger.NewLogger())

	if _, err := calc.ExpiryDate(context.Background(), day(2025, time.March, 10), "Annual"); err == nil {
		t.Fatal("ExpiryDate error = nil, want error")
	}
}
