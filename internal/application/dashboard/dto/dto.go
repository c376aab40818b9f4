// Package dto defines the dashboard summary shapes.
package dto

// ExpiringMember is one row of the expiring-this-month panel.
type ExpiringMember struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Plan          string `json:"plan"`
	ExpiryDate    string `json:"expiry_date"`
	DaysRemaining int    `json:"days_remaining"`
}

// MonthlyFinance is one point of the trailing twelve-month series.
type MonthlyFinance struct {
	Month    string `json:"month"` // YYYY-MM
	Revenue  uint64 `json:"revenue"`
	Expenses uint64 `json:"expenses"`
	Profit   int64  `json:"profit"`
}

type SummaryResponse struct {
	TotalMembers      int64            `json:"total_members"`
	ActiveMembers     int64            `json:"active_members"`
	ExpiredMembers    int64            `json:"expired_members"`
	UnpaidMembers     int64            `json:"unpaid_members"`
	ExpiringThisMonth []ExpiringMember `json:"expiring_this_month"`
	Monthly           []MonthlyFinance `json:"monthly"`
	GeneratedAt       string           `json:"generated_at"`
}
