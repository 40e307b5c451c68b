package unit

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeZone = errors.New("invalid time zone")
	ErrEmptyName       = errors.New("unit name cannot be empty")
)

// Unit is an organizational location owning bookable resources.
// Identity is a caller-assigned string, not a generated UUID; imported data
// sources use their own identifier schemes.
type Unit struct {
	id                          string
	name                        string
	description                 string
	timeZone                    string
	managerEmail                string
	streetAddress               string
	addressZip                  string
	phone                       string
	email                       string
	reservableMaxDaysInAdvance  *int
	reservableMinDaysInAdvance  *int
	dataSource                  string
	dataSourceHours             string
	paymentRequestedWaitingTime int
	createdAt                   time.Time
	updatedAt                   time.Time
}

func NewUnit(id, name, timeZone string) (*Unit, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := time.LoadLocation(timeZone); err != nil {
		return nil, ErrInvalidTimeZone
	}
	return &Unit{
		id:       id,
		name:     name,
		timeZone: timeZone,
	}, nil
}

func ReconstructUnit(
	id, name, description, timeZone, managerEmail string,
	streetAddress, addressZip, phone, email string,
	reservableMaxDaysInAdvance, reservableMinDaysInAdvance *int,
	dataSource, dataSourceHours string,
	paymentRequestedWaitingTime int,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:                          id,
		name:                        name,
		description:                 description,
		timeZone:                    timeZone,
		managerEmail:                managerEmail,
		streetAddress:               streetAddress,
		addressZip:                  addressZip,
		phone:                       phone,
		email:                       email,
		reservableMaxDaysInAdvance:  reservableMaxDaysInAdvance,
		reservableMinDaysInAdvance:  reservableMinDaysInAdvance,
		dataSource:                  dataSource,
		dataSourceHours:             dataSourceHours,
		paymentRequestedWaitingTime: paymentRequestedWaitingTime,
		createdAt:                   createdAt,
		updatedAt:                   updatedAt,
	}
}

func (u *Unit) HasImportedData() bool {
	return u.dataSource != ""
}

func (u *Unit) HasImportedHours() bool {
	return u.dataSourceHours != ""
}

// IsEditable reports whether normal admin users may edit the unit.
// Imported units are managed by their importer.
func (u *Unit) IsEditable() bool {
	return !(u.HasImportedData() || u.HasImportedHours())
}

func (u *Unit) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(u.timeZone)
	if err != nil {
		return nil, ErrInvalidTimeZone
	}
	return loc, nil
}

// ReservableBefore returns the future cutoff implied by the max-days-in-advance
// window, or the zero time when no window is set.
func (u *Unit) ReservableBefore(now time.Time) time.Time {
	return datetimeDaysFromNow(now, u.reservableMaxDaysInAdvance)
}

// ReservableAfter returns the earliest allowed booking time implied by the
// min-days-in-advance window, or the zero time when no window is set.
func (u *Unit) ReservableAfter(now time.Time) time.Time {
	return datetimeDaysFromNow(now, u.reservableMinDaysInAdvance)
}

// Midnight after now+days, in local time of now.
func datetimeDaysFromNow(now time.Time, days *int) time.Time {
	if days == nil {
		return time.Time{}
	}
	day := now.AddDate(0, 0, *days+1)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

func (u *Unit) ID() string                       { return u.id }
func (u *Unit) Name() string                     { return u.name }
func (u *Unit) Description() string              { return u.description }
func (u *Unit) TimeZone() string                 { return u.timeZone }
func (u *Unit) ManagerEmail() string             { return u.managerEmail }
func (u *Unit) DataSource() string               { return u.dataSource }
func (u *Unit) PaymentRequestedWaitingTime() int { return u.paymentRequestedWaitingTime }
func (u *Unit) CreatedAt() time.Time             { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time             { return u.updatedAt }
