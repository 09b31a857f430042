package user

type Role string

const (
	RoleIntern Role = "intern"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleIntern, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanSettleBookings reports whether the role may run financial lifecycle
// operations such as completion.
func (r Role) CanSettleBookings() bool {
	return r == RoleAdmin || r == RoleStaff
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
