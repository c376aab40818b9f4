// Package expense contains the operating expense aggregate.
package expense

import (
	"fmt"
	"time"
)

type Expense struct {
	id          uint
	description string
	category    string
	amount      uint64
	incurredOn  time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExpense(description, category string, amount uint64, incurredOn time.Time) (*Expense, error) {
	if description == "" {
		return nil, fmt.Errorf("expense description is required")
	}
	if incurredOn.IsZero() {
		return nil, fmt.Errorf("expense date is required")
	}

	now := time.Now()
	return &Expense{
		description: description,
		category:    category,
		amount:      amount,
		incurredOn:  incurredOn,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructExpense(id uint, description, category string, amount uint64,
	incurredOn, createdAt, updatedAt time.Time) (*Expense, error) {

	if id == 0 {
		return nil, fmt.Errorf("expense ID cannot be zero")
	}

	return &Expense{
		id:          id,
		description: description,
		category:    category,
		amount:      amount,
		incurredOn:  incurredOn,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Expense) ID() uint              { return e.id }
func (e *Expense) Description() string   { return e.description }
func (e *Expense) Category() string      { return e.category }
func (e *Expense) Amount() uint64        { return e.amount }
func (e *Expense) IncurredOn() time.Time { return e.incurredOn }
func (e *Expense) CreatedAt() time.Time  { return e.createdAt }
func (e *Expense) UpdatedAt() time.Time  { return e.updatedAt }

func (e *Expense) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("expense ID already set")
	}
	if id == 0 {
		return fmt.Errorf("expense ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Expense) Update(description, category *string, amount *uint64, incurredOn *time.Time) error {
	if description != nil {
		if *description == "" {
			return fmt.Errorf("expense description cannot be empty")
		}
		e.description = *description
	}
	if category != nil {
		e.category = *category
	}
	if amount != nil {
		e.amount = *amount
	}
	if incurredOn != nil {
		if incurredOn.IsZero() {
			return fmt.Errorf("expense date cannot be empty")
		}
		e.incurredOn = *incurredOn
	}
	e.updatedAt = time.Now()
	return nil
}
