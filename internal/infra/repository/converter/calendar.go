package converter

import (
	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
)

func CalendarLinkToCreateParams(link *calendar.OutlookCalendarLink) sqlq.CreateCalendarLinkParams {
	return sqlq.CreateCalendarLinkParams{
		ID:              link.ID(),
		ResourceID:      link.ResourceID(),
		UserID:          link.UserID(),
		MicrosoftUserID: link.MicrosoftUserID(),
		Token:           link.Token(),
	}
}

func CalendarLinkToSyncStateParams(link *calendar.OutlookCalendarLink) sqlq.UpdateCalendarLinkSyncStateParams {
	return sqlq.UpdateCalendarLinkSyncStateParams{
		ID:                link.ID(),
		Token:             link.Token(),
		FailureCount:      int32(link.FailureCount()),
		NotificationArmed: link.NotificationArmed(),
		LastSyncedAt:      pgconv.TimePtrToPgtype(link.LastSyncedAt()),
	}
}

func CalendarLinkFromRow(row sqlq.CalendarLinkRow) *calendar.OutlookCalendarLink {
	return calendar.ReconstructOutlookCalendarLink(
		row.ID,
		row.ResourceID,
		row.UserID,
		row.Token,
		row.MicrosoftUserID,
		int(row.FailureCount),
		row.NotificationArmed,
		pgconv.TimePtrFromPgtype(row.LastSyncedAt),
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
	)
}
