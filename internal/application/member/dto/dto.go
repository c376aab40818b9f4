// Package dto defines the request and response shapes of the member API.
// Dates cross the wire as YYYY-MM-DD strings.
package dto

// CreateMemberRequest carries the caller-supplied member fields. The member
// code is never accepted from the client, and any expiry date sent here is
// recomputed server-side from the plan.
type CreateMemberRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone" binding:"required"`
	Plan          string `json:"plan" binding:"required"`
	JoinDate      string `json:"join_date" binding:"required"`
	ExpiryDate    string `json:"expiry_date"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PaymentAmount uint64 `json:"payment_amount"`
}

type UpdateMemberRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Plan          *string `json:"plan"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
	PaymentAmount *uint64 `json:"payment_amount"`
}

// PreviewMemberRequest asks what code and expiry date a member would get if
// created with these inputs. Nothing is persisted.
type PreviewMemberRequest struct {
	Plan     string `json:"plan" binding:"required"`
	JoinDate string `json:"join_date" binding:"required"`
}

type PreviewMemberResponse struct {
	Code       string `json:"code"`
	ExpiryDate string `json:"expiry_date"`
}

type MemberResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone"`
	Plan          string `json:"plan"`
	JoinDate      string `json:"join_date"`
	ExpiryDate    string `json:"expiry_date"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PaymentAmount uint64 `json:"payment_amount"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ListMembersQuery carries the list filters. Empty strings mean no filter.
type ListMembersQuery struct {
	Status        string
	PaymentStatus string
	Plan          string
	Search        string
	Page          int
	PageSize      int
}
