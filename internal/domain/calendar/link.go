package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyToken           = errors.New("token blob cannot be empty")
	ErrEmptyMicrosoftUserID = errors.New("microsoft user id cannot be empty")
)

// OutlookCalendarLink is the durable binding between a resource and an
// external calendar identity. At most one active link exists per resource
// (unique constraint on resource id). Its presence gates all sync activity.
//
// The token blob is the provider's serialized token as returned from the
// token endpoint; no schema is enforced locally.
type OutlookCalendarLink struct {
	id                uuid.UUID
	resourceID        uuid.UUID
	userID            uuid.UUID
	token             []byte
	microsoftUserID   string
	failureCount      int
	notificationArmed bool
	lastSyncedAt      *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewOutlookCalendarLink(resourceID, userID uuid.UUID, token []byte, microsoftUserID string) (*OutlookCalendarLink, error) {
	if len(token) == 0 {
		return nil, ErrEmptyToken
	}
	if microsoftUserID == "" {
		return nil, ErrEmptyMicrosoftUserID
	}
	return &OutlookCalendarLink{
		id:              uuid.New(),
		resourceID:      resourceID,
		userID:          userID,
		token:           token,
		microsoftUserID: microsoftUserID,
		// Armed from birth: the first sustained failure run must notify.
		notificationArmed: true,
	}, nil
}

func ReconstructOutlookCalendarLink(
	id, resourceID, userID uuid.UUID,
	token []byte,
	microsoftUserID string,
	failureCount int,
	notificationArmed bool,
	lastSyncedAt *time.Time,
	createdAt, updatedAt time.Time,
) *OutlookCalendarLink {
	return &OutlookCalendarLink{
		id:                id,
		resourceID:        resourceID,
		userID:            userID,
		token:             token,
		microsoftUserID:   microsoftUserID,
		failureCount:      failureCount,
		notificationArmed: notificationArmed,
		lastSyncedAt:      lastSyncedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// RecordFailure increments the consecutive-failure counter and reports
// whether the escalation notification should fire now: exactly once, when the
// armed counter crosses the threshold.
func (l *OutlookCalendarLink) RecordFailure(threshold int) (notify bool) {
	l.failureCount++
	if !l.notificationArmed {
		return false
	}
	if l.failureCount >= threshold {
		// One-shot: disarm until the next success re-arms.
		l.notificationArmed = false
		return true
	}
	return false
}

// RecordSuccess resets the failure counter and re-arms the notification.
func (l *OutlookCalendarLink) RecordSuccess(at time.Time) {
	l.failureCount = 0
	l.notificationArmed = true
	l.lastSyncedAt = &at
}

func (l *OutlookCalendarLink) ReplaceToken(token []byte) {
	l.token = token
}

func (l *OutlookCalendarLink) ID() uuid.UUID           { return l.id }
func (l *OutlookCalendarLink) ResourceID() uuid.UUID   { return l.resourceID }
func (l *OutlookCalendarLink) UserID() uuid.UUID       { return l.userID }
func (l *OutlookCalendarLink) Token() []byte           { return l.token }
func (l *OutlookCalendarLink) MicrosoftUserID() string { return l.microsoftUserID }
func (l *OutlookCalendarLink) FailureCount() int       { return l.failureCount }
func (l *OutlookCalendarLink) NotificationArmed() bool { return l.notificationArmed }
func (l *OutlookCalendarLink) LastSyncedAt() *time.Time { return l.lastSyncedAt }
func (l *OutlookCalendarLink) CreatedAt() time.Time     { return l.createdAt }
func (l *OutlookCalendarLink) UpdatedAt() time.Time     { return l.updatedAt }
