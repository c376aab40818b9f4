package biztime

import (
	"os"
	"testing"
	"time"
)

// The whole package runs under a DST-observing business timezone so the
// date-boundary math is exercised across clock shifts, not just in UTC.
func TestMain(m *testing.M) {
	if err := Init("America/New_York"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestDaysBetween(t *testing.T) {
	ny := Location()

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, 6, 10, 8, 0, 0, 0, ny),
			b:    time.Date(2025, 6, 10, 22, 0, 0, 0, ny),
			want: 0,
		},
		{
			name: "adjacent days ignore time of day",
			a:    time.Date(2025, 6, 10, 23, 59, 0, 0, ny),
			b:    time.Date(2025, 6, 11, 0, 1, 0, 0, ny),
			want: 1,
		},
		{
			name: "negative when b before a",
			a:    time.Date(2025, 6, 11, 0, 0, 0, 0, ny),
			b:    time.Date(2025, 6, 10, 0, 0, 0, 0, ny),
			want: -1,
		},
		{
			// US DST starts 2025-03-09; that midnight-to-midnight span is
			// only 23 hours but is still one calendar day.
			name: "spring forward day counts as a full day",
			a:    time.Date(2025, 3, 9, 0, 0, 0, 0, ny),
			b:    time.Date(2025, 3, 10, 0, 0, 0, 0, ny),
			want: 1,
		},
		{
			name: "window spanning the spring transition",
			a:    time.Date(2025, 3, 8, 0, 0, 0, 0, ny),
			b:    time.Date(2025, 3, 11, 0, 0, 0, 0, ny),
			want: 3,
		},
		{
			// US DST ends 2025-11-02; a 25-hour day must not round up.
			name: "fall back day counts as a full day",
			a:    time.Date(2025, 11, 1, 0, 0, 0, 0, ny),
			b:    time.Date(2025, 11, 3, 0, 0, 0, 0, ny),
			want: 2,
		},
		{
			name: "UTC instants convert to business days first",
			a:    time.Date(2025, 6, 11, 2, 0, 0, 0, time.UTC), // still Jun 10 in New York
			b:    time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStartOfDay_DuringTransition(t *testing.T) {
	ny := Location()

	got := StartOfDay(time.Date(2025, 3, 9, 15, 30, 0, 0, ny))
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, ny)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-03-09" {
		t.Errorf("FormatDate(ParseDate()) = %q, want %q", got, "2025-03-09")
	}
	if !parsed.Equal(StartOfDay(parsed)) {
		t.Errorf("ParseDate should return business-timezone midnight, got %v", parsed)
	}
}

func TestSameMonth_AcrossZones(t *testing.T) {
	// 2025-07-01 03:00 UTC is still June 30 in New York.
	utcJuly := time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC)
	nyJune := time.Date(2025, 6, 15, 12, 0, 0, 0, Location())

	if !SameMonth(utcJuly, nyJune) {
		t.Errorf("SameMonth(%v, %v) = false, want true in business timezone", utcJuly, nyJune)
	}
}
