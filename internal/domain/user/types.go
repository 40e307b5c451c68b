package user

// Role is the coarse account-level role carried in JWT claims.
// Unit-scoped authority lives in the unit domain (UnitAuthorization).
type Role string

const (
	RoleUser         Role = "user"
	RoleStaff        Role = "staff"
	RoleGeneralAdmin Role = "general_admin"
	RoleSuperuser    Role = "superuser"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleGeneralAdmin, RoleSuperuser:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
