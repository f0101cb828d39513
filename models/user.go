package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// ValidRole reports whether r is one of the two supported roles.
func ValidRole(r UserRole) bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User is a stored account record. The password field carries a bcrypt hash
// and is named "password" in the stored blob; HTTP handlers never marshal
// User directly — they build explicit response payloads without it.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"password"`
	Role         UserRole `json:"role"`
}
