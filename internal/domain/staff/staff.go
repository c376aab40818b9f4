// Package staff contains the staff aggregate (trainers, managers,
// receptionists). Monthly salaries feed the dashboard expense series.
package staff

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleTrainer      Role = "trainer"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleTrainer, RoleManager, RoleReceptionist:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type Staff struct {
	id        uint
	name      string
	email     string
	phone     string
	role      Role
	salary    uint64
	status    Status
	hireDate  time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewStaff(name, email, phone string, role Role, salary uint64, hireDate time.Time) (*Staff, error) {
	if name == "" {
		return nil, fmt.Errorf("staff name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid staff role: %s", role)
	}
	if hireDate.IsZero() {
		return nil, fmt.Errorf("hire date is required")
	}

	now := time.Now()
	return &Staff{
		name:      name,
		email:     email,
		phone:     phone,
		role:      role,
		salary:    salary,
		status:    StatusActive,
		hireDate:  hireDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStaff(id uint, name, email, phone string, role Role, salary uint64,
	status Status, hireDate, createdAt, updatedAt time.Time) (*Staff, error) {

	if id == 0 {
		return nil, fmt.Errorf("staff ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid staff role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid staff status: %s", status)
	}

	return &Staff{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		role:      role,
		salary:    salary,
		status:    status,
		hireDate:  hireDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Staff) ID() uint             { return s.id }
func (s *Staff) Name() string         { return s.name }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) Phone() string        { return s.phone }
func (s *Staff) Role() Role           { return s.role }
func (s *Staff) Salary() uint64       { return s.salary }
func (s *Staff) Status() Status       { return s.status }
func (s *Staff) HireDate() time.Time  { return s.hireDate }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time { return s.updatedAt }

func (s *Staff) IsActive() bool { return s.status == StatusActive }

func (s *Staff) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("staff ID already set")
	}
	if id == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Staff) Update(name, email, phone *string, role *Role, salary *uint64, status *Status) error {
	if name != nil {
		if *name == "" {
			return fmt.Errorf("staff name cannot be empty")
		}
		s.name = *name
	}
	if email != nil {
		s.email = *email
	}
	if phone != nil {
		s.phone = *phone
	}
	if role != nil {
		if !role.IsValid() {
			return fmt.Errorf("invalid staff role: %s", *role)
		}
		s.role = *role
	}
	if salary != nil {
		s.salary = *salary
	}
	if status != nil {
		if !status.IsValid() {
			return fmt.Errorf("invalid staff status: %s", *status)
		}
		s.status = *status
	}
	s.updatedAt = time.Now()
	return nil
}
