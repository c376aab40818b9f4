// Package dto defines the request and response shapes of the staff API.
package dto

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
	Salary   uint64 `json:"salary"`
	HireDate string `json:"hire_date" binding:"required"`
}

type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Role   *string `json:"role"`
	Salary *uint64 `json:"salary"`
	Status *string `json:"status"`
}

type StaffResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Salary   uint64 `json:"salary"`
	Status   string `json:"status"`
	HireDate string `json:"hire_date"`
}
