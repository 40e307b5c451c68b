package reservation

import (
	"errors"
	"time"
)

var ErrNotConfirmed = errors.New("reservation has no staff confirmation time")

// DeadlineDisplayFormat matches the format shown to reservers in notifications.
const DeadlineDisplayFormat = "02.01.2006 15:04"

// WaitingTimeSpec carries the payment-waiting-time candidates for one
// reservation. Hours value 0 means "not set" at that scope.
type WaitingTimeSpec struct {
	ResourceHours int
	UnitHours     int
	DefaultHours  int
}

// EffectiveHours resolves the waiting time: resource override wins over the
// unit override, which wins over the environment default.
func (s WaitingTimeSpec) EffectiveHours() int {
	switch {
	case s.ResourceHours > 0:
		return s.ResourceHours
	case s.UnitHours > 0:
		return s.UnitHours
	default:
		return s.DefaultHours
	}
}

// PaymentRequestedDeadline computes the moment a confirmed preliminary
// reservation expires unless paid: confirmation time plus the effective
// waiting time, truncated down to the hour in the unit's time zone.
func PaymentRequestedDeadline(confirmedByStaffAt time.Time, spec WaitingTimeSpec, loc *time.Location) (time.Time, error) {
	if confirmedByStaffAt.IsZero() {
		return time.Time{}, ErrNotConfirmed
	}
	hours := spec.EffectiveHours()
	if hours <= 0 {
		return time.Time{}, nil
	}

	deadline := confirmedByStaffAt.Add(time.Duration(hours) * time.Hour).In(loc)
	return time.Date(deadline.Year(), deadline.Month(), deadline.Day(), deadline.Hour(), 0, 0, 0, loc), nil
}

// FormatDeadline renders a deadline for display; the zero time renders empty.
func FormatDeadline(deadline time.Time) string {
	if deadline.IsZero() {
		return ""
	}
	return deadline.Format(DeadlineDisplayFormat)
}
