package valueobjects

import "testing"

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"active", "inactive", "expired"} {
		s, err := ParseStatus(raw)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", raw, err)
		}
		if s.String() != raw {
			t.Errorf("ParseStatus(%q) = %q", raw, s)
		}
	}

	for _, raw := range []string{"", "Active", "deleted", "ACTIVE"} {
		if _, err := ParseStatus(raw); err == nil {
			t.Errorf("ParseStatus(%q) = nil error, want error", raw)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, raw := range []string{"paid", "unpaid"} {
		p, err := ParsePaymentStatus(raw)
		if err != nil {
			t.Errorf("ParsePaymentStatus(%q) unexpected error: %v", raw, err)
		}
		if p.String() != raw {
			t.Errorf("ParsePaymentStatus(%q) = %q", raw, p)
		}
	}

	for _, raw := range []string{"", "Paid", "pending"} {
		if _, err := ParsePaymentStatus(raw); err == nil {
			t.Errorf("ParsePaymentStatus(%q) = nil error, want error", raw)
		}
	}
}
