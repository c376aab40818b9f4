package valueobjects

import (
	"testing"
	"time"
)

func TestMonthCode_AllMonths(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "JA"},
		{time.February, "FE"},
		{time.March, "MR"},
		{time.April, "AP"},
		{time.May, "MY"},
		{time.June, "JN"},
		{time.July, "JL"},
		{time.August, "AU"},
		{time.September, "SE"},
		{time.October, "OC"},
		{time.November, "NO"},
		{time.December, "DE"},
	}

	for _, tt := range tests {
		if got := MonthCode(tt.month); got != tt.want {
			t.Errorf("MonthCode(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestMonthCode_OutOfRange(t *testing.T) {
	for _, m := range []time.Month{0, 13, 99, -1} {
		if got := MonthCode(m); got != UnknownMonthCode {
			t.Errorf("MonthCode(%d) = %q, want %q", m, got, UnknownMonthCode)
		}
	}
}

func TestEncodeMemberCode(t *testing.T) {
	tests := []struct {
		name     string
		joinDate time.Time
		sequence int
		want     string
	}{
		{"january 2025 first member", date(2025, time.January, 15), 1, "5JA01"},
		{"december 2025 first member", date(2025, time.December, 31), 1, "5DE01"},
		{"year digit wraps each decade", date(2030, time.March, 1), 7, "0MR07"},
		{"two digit sequence unpadded", date(2025, time.June, 10), 42, "5JN42"},
		{"sequence 100 is not clamped", date(2025, time.July, 4), 100, "5JL100"},
		{"sequence 9 pads to two digits", date(2029, time.October, 9), 9, "9OC09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeMemberCode(tt.joinDate, tt.sequence); got != tt.want {
				t.Errorf("EncodeMemberCode(%v, %d) = %q, want %q", tt.joinDate, tt.sequence, got, tt.want)
			}
		})
	}
}

func TestEncodeMemberCode_Deterministic(t *testing.T) {
	joinDate := date(2025, time.April, 2)
	first := EncodeMemberCode(joinDate, 3)
	for i := 0; i < 10; i++ {
		if got := EncodeMemberCode(joinDate, 3); got != first {
			t.Fatalf("EncodeMemberCode is not deterministic: %q != %q", got, first)
		}
	}
}

// Codes recur every ten years for the same month and sequence; the year
// contributes only its last digit.
func TestEncodeMemberCode_DecadeCollision(t *testing.T) {
	a := EncodeMemberCode(date(2025, time.May, 1), 1)
	b := EncodeMemberCode(date(2035, time.May, 1), 1)
	if a != b {
		t.Errorf("codes a decade apart should match: %q != %q", a, b)
	}
}

func TestParseMemberCode(t *testing.T) {
	tests := []struct {
		code string
		want MemberCodeParts
	}{
		{"5JA01", MemberCodeParts{YearDigit: 5, MonthCode: "JA", Sequence: 1}},
		{"0MR07", MemberCodeParts{YearDigit: 0, MonthCode: "MR", Sequence: 7}},
		{"5JL100", MemberCodeParts{YearDigit: 5, MonthCode: "JL", Sequence: 100}},
	}

	for _, tt := range tests {
		got, err := ParseMemberCode(tt.code)
		if err != nil {
			t.Errorf("ParseMemberCode(%q) unexpected error: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMemberCode(%q) = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestParseMemberCode_Invalid(t *testing.T) {
	for _, code := range []string{"", "5JA", "XJA01", "5JAxx"} {
		if _, err := ParseMemberCode(code); err == nil {
			t.Errorf("ParseMemberCode(%q) = nil error, want error", code)
		}
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	for seq := 1; seq <= 120; seq += 17 {
		code := EncodeMemberCode(date(2026, time.August, 20), seq)
		parts, err := ParseMemberCode(code)
		if err != nil {
			t.Fatalf("ParseMemberCode(%q) error: %v", code, err)
		}
		if parts.Sequence != seq {
			t.Errorf("round trip sequence = %d, want %d", parts.Sequence, seq)
		}
		if parts.YearDigit != 6 || parts.MonthCode != "AU" {
			t.Errorf("round trip parts = %+v", parts)
		}
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
