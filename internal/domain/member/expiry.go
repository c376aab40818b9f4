package member

import (
	"context"
	"strings"
	"time"
	"unicode"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/shared/logger"
)

// DefaultTermMonths is applied when the plan is missing or its duration
// descriptor is unrecognized. Stale plan references degrade to this default
// instead of blocking member creation.
const DefaultTermMonths = 1

// ExpiryFromDuration computes the membership expiry date from a join date
// and a plan duration descriptor ("1 month", "3 months", "1 year", ...).
//
// Rules, in order:
//   - descriptor contains "year": join date + 1 calendar year. The term is
//     fixed at one year regardless of any leading number; "2 years" still
//     yields +1 year.
//   - descriptor contains "month": join date + N calendar months, where N is
//     the leading integer of the descriptor, defaulting to 1 when absent or
//     zero.
//   - anything else: join date + 1 calendar month.
//
// Date arithmetic follows time.AddDate, which normalizes overflow rather
// than clamping: Feb 29 + 1 year lands on Mar 1, Jan 31 + 1 month on Mar 2
// or Mar 3. This is every caller's single implementation; the preview
// endpoint, the create path and the dashboard all go through here.
func ExpiryFromDuration(joinDate time.Time, duration string) time.Time {
	d := strings.ToLower(strings.TrimSpace(duration))
	switch {
	case strings.Contains(d, "year"):
		return joinDate.AddDate(1, 0, 0)
	case strings.Contains(d, "month"):
		n := leadingInt(d)
		if n <= 0 {
			n = DefaultTermMonths
		}
		return joinDate.AddDate(0, n, 0)
	default:
		return joinDate.AddDate(0, DefaultTermMonths, 0)
	}
}

// leadingInt parses the integer prefix of s, returning 0 when s does not
// start with a digit.
func leadingInt(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if !unicode.IsDigit(r) {
			break
		}
		seen = true
		n = n*10 + int(r-'0')
	}
	if !seen {
		return 0
	}
	return n
}

// ExpiryCalculator resolves a plan name to its duration descriptor and
// applies ExpiryFromDuration. A missing plan is not an error: the term
// falls back to the one-month default.
type ExpiryCalculator struct {
	plans  plan.Repository
	logger logger.Interface
}

func NewExpiryCalculator(plans plan.Repository, logger logger.Interface) *ExpiryCalculator {
	return &ExpiryCalculator{plans: plans, logger: logger}
}

// ExpiryDate computes the expiry date for a join date and plan name.
// Repository failures propagate; plan-not-found degrades to the default
// term.
func (c *ExpiryCalculator) ExpiryDate(ctx context.Context, joinDate time.Time, planName string) (time.Time, error) {
	p, err := c.plans.GetByName(ctx, planName)
	if err != nil {
		return time.Time{}, err
	}
	if p == nil {
		c.logger.Warnw("plan not found for expiry calculation, using default term",
			"plan_name", planName,
			"default_months", DefaultTermMonths)
		return joinDate.AddDate(0, DefaultTermMonths, 0), nil
	}
	return ExpiryFromDuration(joinDate, p.Duration()), nil
}
