// Package constants defines shared constant values used across the application.
package constants

// Database table names
const (
	TableMembers       = "members"
	TablePlans         = "membership_plans"
	TableStaff         = "staff"
	TableExpenses      = "expenses"
	TableNotifications = "notifications"
	TableAdminUsers    = "admin_users"
)

// Runtime environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys set by the auth middleware
const (
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DateLayout is the wire format for calendar dates (join date, expiry date).
const DateLayout = "2006-01-02"

// CodeAllocationRetries bounds the retry loop when a freshly encoded member
// code collides with a concurrently inserted one.
const CodeAllocationRetries = 3
