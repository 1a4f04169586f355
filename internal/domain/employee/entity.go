package employee

import "time"

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Employee entity. Accounts are created once at signup and immutable after.
type Employee struct {
	ID           int64
	Name         string
	EmployeeID   string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Profile is the public view of an account. It never carries the password hash.
type Profile struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
}

func (e Employee) Profile() Profile {
	return Profile{
		ID:         e.ID,
		Name:       e.Name,
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Role:       e.Role,
	}
}
