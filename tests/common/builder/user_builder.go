//go:build unit || e2e

package builder

import (
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID             uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	IsStaff        bool
	IsGeneralAdmin bool
	IsSuperuser    bool
	IsActive       bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	first, last := u.FirstName, u.LastName
	return &queries.AuthorizedUserView{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      &first,
		LastName:       &last,
		IsStaff:        u.IsStaff,
		IsGeneralAdmin: u.IsGeneralAdmin,
		IsSuperuser:    u.IsSuperuser,
		IsActive:       u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsStaff() *UserBuilder {
	u.IsStaff = true
	return u
}

func (u *UserBuilder) AsGeneralAdmin() *UserBuilder {
	u.IsGeneralAdmin = true
	return u
}

func (u *UserBuilder) AsSuperuser() *UserBuilder {
	u.IsSuperuser = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
