package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Staff status is derived state: the first unit authorization
// granted to a plain user promotes them to staff.
type User struct {
	id             uuid.UUID
	email          Email
	passwordHash   string
	firstName      string
	lastName       string
	isStaff        bool
	isGeneralAdmin bool
	isSuperuser    bool
	isActive       bool
	lastLogin      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	firstName, lastName string,
	isStaff, isGeneralAdmin, isSuperuser, isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:             id,
		email:          email,
		passwordHash:   passwordHash,
		firstName:      firstName,
		lastName:       lastName,
		isStaff:        isStaff,
		isGeneralAdmin: isGeneralAdmin,
		isSuperuser:    isSuperuser,
		isActive:       isActive,
		lastLogin:      lastLogin,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// PromoteToStaff marks the user as staff. Returns true when the flag changed.
func (u *User) PromoteToStaff() bool {
	if u.isStaff {
		return false
	}
	u.isStaff = true
	return true
}

// PrimaryRole maps account flags to the single role carried in token claims.
func (u *User) PrimaryRole() Role {
	switch {
	case u.isSuperuser:
		return RoleSuperuser
	case u.isGeneralAdmin:
		return RoleGeneralAdmin
	case u.isStaff:
		return RoleStaff
	default:
		return RoleUser
	}
}

func (u *User) DisplayName() string {
	name := u.firstName
	if u.lastName != "" {
		if name != "" {
			name += " "
		}
		name += u.lastName
	}
	if name == "" {
		return u.email.Value()
	}
	return name
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsStaff() bool        { return u.isStaff }
func (u *User) IsGeneralAdmin() bool { return u.isGeneralAdmin }
func (u *User) IsSuperuser() bool    { return u.isSuperuser }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
