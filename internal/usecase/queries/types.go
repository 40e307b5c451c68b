package queries

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID             uuid.UUID
	Email          string
	FirstName      *string
	LastName       *string
	IsStaff        bool
	IsGeneralAdmin bool
	IsSuperuser    bool
	IsActive       bool
	LastLoginAt    *time.Time
}

// HasGeneralAccess reports whether unit-level grants are irrelevant for the
// user: general admins and superusers see and manage every unit.
func (v *AuthorizedUserView) HasGeneralAccess() bool {
	return v.IsGeneralAdmin || v.IsSuperuser
}

type UnitView struct {
	ID                         string
	Name                       string
	TimeZone                   string
	StreetAddress              *string
	ZipCode                    *string
	Phone                      *string
	Email                      *string
	WwwURL                     *string
	ManagerEmail               *string
	ReservableMaxDaysInAdvance *int32
	ReservableMinDaysInAdvance *int32
	DataSource                 *string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

type ResourceView struct {
	ID                          uuid.UUID
	UnitID                      string
	Name                        string
	Reservable                  bool
	PaymentRequestedWaitingTime *int32
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

type UnitAuthorizationView struct {
	ID     uuid.UUID
	UnitID string
	UserID uuid.UUID
	Level  string
}

type ApproverView struct {
	ID        uuid.UUID
	Email     string
	FirstName *string
	LastName  *string
}

type PaymentContextView struct {
	ReservationID        uuid.UUID
	ConfirmedByStaffAt   *time.Time
	ResourceWaitingHours *int32
	UnitWaitingHours     *int32
	TimeZone             string
}

type PaymentDeadlineView struct {
	ReservationID uuid.UUID
	Deadline      time.Time
	Display       string
}
