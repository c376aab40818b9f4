package valueobjects

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// FuzzParseMemberCode tests the ParseMemberCode function with random inputs
func FuzzParseMemberCode(f *testing.F) {
	// Seed corpus with valid and invalid cases
	seeds := []string{
		"5JA01",
		"0MR07",
		"5JL100",
		"9OC09",
		"5DE42",
		"1XX01",
		"",
		"5JA",
		"XJA01",
		"5JAxx",
		"5ja01",
		" 5JA01",
		"5JA01 ",
		"55555",
		"5JA+1",
		"中文测试码",
		"5" + strings.Repeat("9", 1000),
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			return
		}

		parts, err := ParseMemberCode(input)

		// Anything shorter than 5 characters must be rejected
		if len(input) < 5 {
			if err == nil {
				t.Errorf("ParseMemberCode(%q) should return error for short input", input)
			}
			return
		}

		if err != nil {
			return
		}

		// On success the parts must reflect the input positions exactly
		if parts.YearDigit < 0 || parts.YearDigit > 9 {
			t.Errorf("ParseMemberCode(%q) returned year digit %d outside 0-9", input, parts.YearDigit)
		}
		if parts.MonthCode != input[1:3] {
			t.Errorf("ParseMemberCode(%q) returned month code %q, expected %q", input, parts.MonthCode, input[1:3])
		}
	})
}

// FuzzEncodeMemberCode tests that every encoded code parses back to its inputs
func FuzzEncodeMemberCode(f *testing.F) {
	seeds := []struct {
		year     int
		month    int
		sequence int
	}{
		{2025, 1, 1},
		{2030, 3, 7},
		{2025, 7, 100},
		{2025, 12, 42},
		{2024, 2, 5},
		{9999, 6, 999},
		{2025, 13, 1}, // normalized by time.Date
	}

	for _, seed := range seeds {
		f.Add(seed.year, seed.month, seed.sequence)
	}

	f.Fuzz(func(t *testing.T, year, month, sequence int) {
		if year < 0 || sequence < 1 {
			return
		}

		// time.Date normalizes out-of-range months, so any month input
		// yields a real calendar date.
		date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if date.Year() < 0 {
			return
		}

		code := EncodeMemberCode(date, sequence)

		parts, err := ParseMemberCode(code)
		if err != nil {
			t.Fatalf("ParseMemberCode(EncodeMemberCode) failed for %q: %v", code, err)
		}

		if parts.YearDigit != date.Year()%10 {
			t.Errorf("round trip of %q: year digit = %d, want %d", code, parts.YearDigit, date.Year()%10)
		}
		if parts.MonthCode != MonthCode(date.Month()) {
			t.Errorf("round trip of %q: month code = %q, want %q", code, parts.MonthCode, MonthCode(date.Month()))
		}
		if parts.Sequence != sequence {
			t.Errorf("round trip of %q: sequence = %d, want %d", code, parts.Sequence, sequence)
		}
	})
}
