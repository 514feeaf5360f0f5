package domain

// Role literals stored in the user document's "user" attribute.
const (
	RoleAdmin  = "Admin"
	RoleSeller = "Seller"
	RoleBuyer  = "Buyer"
)

// StatusVerified is written to the "role" attribute by the verify route.
const StatusVerified = "verify"

// Stored attribute names. The role lives under "user" on the wire.
const (
	UserEmailField  = "email"
	UserRoleField   = "user"
	UserStatusField = "role"
)

type User struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"user"`
	Status string `json:"role,omitempty"`
}
