package valueobjects

import "fmt"

// Status is the membership lifecycle state.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusExpired:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid member status: %q", raw)
	}
	return s, nil
}

// PaymentStatus tracks whether the current term has been paid.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

func (p PaymentStatus) IsValid() bool {
	return p == PaymentStatusPaid || p == PaymentStatusUnpaid
}

func (p PaymentStatus) String() string { return string(p) }

// ParsePaymentStatus validates a raw payment status string.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	p := PaymentStatus(raw)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid payment status: %q", raw)
	}
	return p, nil
}
