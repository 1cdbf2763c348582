package domain

// Role is the caller's role as asserted by the transport layer.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Actor identifies the caller of a mutating operation. Every operation
// that depends on who is asking receives the actor explicitly instead of
// reading it from ambient request state.
type Actor struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the actor holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the customer a booking belongs to.
func (a Actor) Owns(b *Booking) bool {
	return b != nil && a.UserID == b.CustomerID
}
