// Package notification contains stored back-office notifications and the
// emitter port used for fire-and-forget delivery.
package notification

import (
	"fmt"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	}
	return false
}

type Notification struct {
	id        uint
	title     string
	message   string
	severity  Severity
	read      bool
	createdAt time.Time
}

func NewNotification(title, message string, severity Severity) (*Notification, error) {
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid notification severity: %s", severity)
	}

	return &Notification{
		title:     title,
		message:   message,
		severity:  severity,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(id uint, title, message string, severity Severity,
	read bool, createdAt time.Time) (*Notification, error) {

	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid notification severity: %s", severity)
	}

	return &Notification{
		id:        id,
		title:     title,
		message:   message,
		severity:  severity,
		read:      read,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Severity() Severity   { return n.severity }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.read = true
}
