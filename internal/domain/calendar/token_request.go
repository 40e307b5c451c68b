package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyState = errors.New("state nonce cannot be empty")

// OutlookTokenRequestData correlates an OAuth state nonce with the link
// parameters captured at authorization start. It lives for exactly one OAuth
// round-trip: created by start, consumed and deleted by the callback. A
// callback whose state has no matching row is rejected, never defaulted.
type OutlookTokenRequestData struct {
	state      string
	resourceID uuid.UUID
	userID     uuid.UUID
	returnTo   string
	createdAt  time.Time
}

func NewOutlookTokenRequestData(state string, resourceID, userID uuid.UUID, returnTo string, createdAt time.Time) (*OutlookTokenRequestData, error) {
	if state == "" {
		return nil, ErrEmptyState
	}
	return &OutlookTokenRequestData{
		state:      state,
		resourceID: resourceID,
		userID:     userID,
		returnTo:   returnTo,
		createdAt:  createdAt,
	}, nil
}

func ReconstructOutlookTokenRequestData(state string, resourceID, userID uuid.UUID, returnTo string, createdAt time.Time) *OutlookTokenRequestData {
	return &OutlookTokenRequestData{
		state:      state,
		resourceID: resourceID,
		userID:     userID,
		returnTo:   returnTo,
		createdAt:  createdAt,
	}
}

func (d *OutlookTokenRequestData) State() string        { return d.state }
func (d *OutlookTokenRequestData) ResourceID() uuid.UUID { return d.resourceID }
func (d *OutlookTokenRequestData) UserID() uuid.UUID     { return d.userID }
func (d *OutlookTokenRequestData) ReturnTo() string      { return d.returnTo }
func (d *OutlookTokenRequestData) CreatedAt() time.Time  { return d.createdAt }
