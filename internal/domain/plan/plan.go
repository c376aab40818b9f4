// Package plan contains the membership plan aggregate. The duration
// descriptor is free text; only the expiry calculator interprets it.
package plan

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Plan is a membership plan: a name, a price, a free-text duration
// descriptor like "3 months" or "1 year", and a feature blurb.
type Plan struct {
	id        uint
	name      string
	price     uint64
	duration  string
	features  string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewPlan(name string, price uint64, duration, features string) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if duration == "" {
		return nil, fmt.Errorf("plan duration is required")
	}

	now := time.Now()
	return &Plan{
		name:      name,
		price:     price,
		duration:  duration,
		features:  features,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPlan(id uint, name string, price uint64, duration, features string,
	status string, createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	planStatus := Status(status)
	if !planStatus.IsValid() {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	return &Plan{
		id:        id,
		name:      name,
		price:     price,
		duration:  duration,
		features:  features,
		status:    planStatus,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Price() uint64        { return p.price }
func (p *Plan) Duration() string     { return p.duration }
func (p *Plan) Features() string     { return p.features }
func (p *Plan) Status() Status       { return p.status }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) IsActive() bool { return p.status == StatusActive }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update applies a partial mutation; nil pointers leave fields unchanged.
func (p *Plan) Update(price *uint64, duration, features *string, status *Status) error {
	if price != nil {
		p.price = *price
	}
	if duration != nil {
		if *duration == "" {
			return fmt.Errorf("plan duration cannot be empty")
		}
		p.duration = *duration
	}
	if features != nil {
		p.features = *features
	}
	if status != nil {
		if !status.IsValid() {
			return fmt.Errorf("invalid plan status: %s", *status)
		}
		p.status = *status
	}
	p.updatedAt = time.Now()
	return nil
}
