package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleClient  Role = "client"
	RoleCleaner Role = "cleaner"
)

// UserValues is the acting principal resolved by the auth middleware and
// passed into the service layer by value.
type UserValues struct {
	ID    uint
	Email string
	Role  Role
}

// IsAdmin reports whether the acting user carries the admin role.
func (u UserValues) IsAdmin() bool {
	return u.Role == RoleAdmin
}
