package models

// Role is the account role assigned at provisioning time.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Roles lists the allowed values for a new account.
var Roles = []Role{RoleEmployee, RoleAdmin}

// ValidRole reports whether s is one of the allowed role values.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// NewUserRequest is the payload for provisioning an account. It exists only
// for the duration of form submission.
type NewUserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
