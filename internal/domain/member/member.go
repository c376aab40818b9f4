// Package member contains the member aggregate and the derivation rules for
// its two computed fields: the member code and the membership expiry date.
package member

import (
	"fmt"
	"time"

	vo "gymdesk/internal/domain/member/valueobjects"
)

// Member is a gym member. The code and expiry date are derived at creation
// time; everything else is caller-supplied.
type Member struct {
	id            uint
	code          string
	name          string
	email         string
	phone         string
	planName      string
	joinDate      time.Time
	expiryDate    time.Time
	status        vo.Status
	paymentStatus vo.PaymentStatus
	paymentAmount uint64
	createdAt     time.Time
	updatedAt     time.Time
}

// NewMember builds a member with a freshly derived code and expiry date.
// Field-level validation happens in the creation usecase; this constructor
// only enforces structural invariants.
func NewMember(code, name, email, phone, planName string, joinDate, expiryDate time.Time,
	status vo.Status, paymentStatus vo.PaymentStatus, paymentAmount uint64) (*Member, error) {

	if code == "" {
		return nil, fmt.Errorf("member code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("member name is required")
	}
	if joinDate.IsZero() {
		return nil, fmt.Errorf("join date is required")
	}
	if expiryDate.Before(joinDate) {
		return nil, fmt.Errorf("expiry date %s precedes join date %s",
			expiryDate.Format("2006-01-02"), joinDate.Format("2006-01-02"))
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid member status: %s", status)
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}

	now := time.Now()
	return &Member{
		code:          code,
		name:          name,
		email:         email,
		phone:         phone,
		planName:      planName,
		joinDate:      joinDate,
		expiryDate:    expiryDate,
		status:        status,
		paymentStatus: paymentStatus,
		paymentAmount: paymentAmount,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructMember rebuilds a member from persistence without revalidating
// derivations.
func ReconstructMember(id uint, code, name, email, phone, planName string,
	joinDate, expiryDate time.Time, status vo.Status, paymentStatus vo.PaymentStatus,
	paymentAmount uint64, createdAt, updatedAt time.Time) (*Member, error) {

	if id == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid member status: %s", status)
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}

	return &Member{
		id:            id,
		code:          code,
		name:          name,
		email:         email,
		phone:         phone,
		planName:      planName,
		joinDate:      joinDate,
		expiryDate:    expiryDate,
		status:        status,
		paymentStatus: paymentStatus,
		paymentAmount: paymentAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (m *Member) ID() uint                         { return m.id }
func (m *Member) Code() string                     { return m.code }
func (m *Member) Name() string                     { return m.name }
func (m *Member) Email() string                    { return m.email }
func (m *Member) Phone() string                    { return m.phone }
func (m *Member) PlanName() string                 { return m.planName }
func (m *Member) JoinDate() time.Time              { return m.joinDate }
func (m *Member) ExpiryDate() time.Time            { return m.expiryDate }
func (m *Member) Status() vo.Status                { return m.status }
func (m *Member) PaymentStatus() vo.PaymentStatus  { return m.paymentStatus }
func (m *Member) PaymentAmount() uint64            { return m.paymentAmount }
func (m *Member) CreatedAt() time.Time             { return m.createdAt }
func (m *Member) UpdatedAt() time.Time             { return m.updatedAt }

// SetID assigns the persistence identity after insert.
func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID already set")
	}
	if id == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = id
	return nil
}

// Update applies a partial mutation. Nil pointers leave fields untouched.
// The code, join date and expiry date are not updatable through this path.
func (m *Member) Update(name, email, phone, planName *string,
	status *vo.Status, paymentStatus *vo.PaymentStatus, paymentAmount *uint64) error {

	if name != nil {
		if *name == "" {
			return fmt.Errorf("member name cannot be empty")
		}
		m.name = *name
	}
	if email != nil {
		m.email = *email
	}
	if phone != nil {
		if *phone == "" {
			return fmt.Errorf("member phone cannot be empty")
		}
		m.phone = *phone
	}
	if planName != nil {
		if *planName == "" {
			return fmt.Errorf("membership plan cannot be empty")
		}
		m.planName = *planName
	}
	if status != nil {
		if !status.IsValid() {
			return fmt.Errorf("invalid member status: %s", *status)
		}
		m.status = *status
	}
	if paymentStatus != nil {
		if !paymentStatus.IsValid() {
			return fmt.Errorf("invalid payment status: %s", *paymentStatus)
		}
		m.paymentStatus = *paymentStatus
	}
	if paymentAmount != nil {
		m.paymentAmount = *paymentAmount
	}

	m.updatedAt = time.Now()
	return nil
}

// MarkExpired transitions an active member whose term has lapsed.
func (m *Member) MarkExpired() {
	m.status = vo.StatusExpired
	m.updatedAt = time.Now()
}

// IsExpiredAsOf reports whether the membership term has lapsed by the given
// date.
func (m *Member) IsExpiredAsOf(date time.Time) bool {
	return m.expiryDate.Before(date)
}
