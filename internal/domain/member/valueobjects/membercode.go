// Package valueobjects holds the member value objects, including the derived
// member code.
package valueobjects

import (
	"fmt"
	"strconv"
	"time"
)

// monthCodes maps each calendar month to its fixed two-letter code.
var monthCodes = map[time.Month]string{
	time.January:   "JA",
	time.February:  "FE",
	time.March:     "MR",
	time.April:     "AP",
	time.May:       "MY",
	time.June:      "JN",
	time.July:      "JL",
	time.August:    "AU",
	time.September: "SE",
	time.October:   "OC",
	time.November:  "NO",
	time.December:  "DE",
}

// UnknownMonthCode is returned for any month outside 1-12.
const UnknownMonthCode = "XX"

// MonthCode returns the two-letter code for a month, or "XX" for any value
// outside the calendar range. Total over all inputs; never errors.
func MonthCode(m time.Month) string {
	if code, ok := monthCodes[m]; ok {
		return code
	}
	return UnknownMonthCode
}

// EncodeMemberCode derives the 5-character member code from a join date and
// the member's 1-based sequence number within that join month:
//
//	<last digit of year><month code><sequence, zero-padded to 2>
//
// e.g. a join date in January 2025 with sequence 1 encodes as "5JA01".
//
// The code is a pure function of (year, month, sequence). The year
// contributes only its last digit, so codes recur every ten years for the
// same month and sequence; that is the documented format, callers must not
// assume decade-wide uniqueness. Sequences of 100 or more are not clamped
// and produce a longer tail.
func EncodeMemberCode(joinDate time.Time, sequence int) string {
	return fmt.Sprintf("%d%s%02d", joinDate.Year()%10, MonthCode(joinDate.Month()), sequence)
}

// MemberCodeParts is the decoded form of a member code.
type MemberCodeParts struct {
	YearDigit int
	MonthCode string
	Sequence  int
}

// ParseMemberCode splits a member code back into its parts. The month code
// is not resolved to a month because the mapping is not reversible for "XX".
func ParseMemberCode(code string) (MemberCodeParts, error) {
	if len(code) < 5 {
		return MemberCodeParts{}, fmt.Errorf("member code too short: %q", code)
	}

	digit, err := strconv.Atoi(code[0:1])
	if err != nil {
		return MemberCodeParts{}, fmt.Errorf("invalid year digit in member code %q", code)
	}

	seq, err := strconv.Atoi(code[3:])
	if err != nil {
		return MemberCodeParts{}, fmt.Errorf("invalid sequence in member code %q", code)
	}

	return MemberCodeParts{
		YearDigit: digit,
		MonthCode: code[1:3],
		Sequence:  seq,
	}, nil
}
