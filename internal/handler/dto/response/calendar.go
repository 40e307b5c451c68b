package response

import (
	"resource-booking-api/internal/usecase/commands"
)

type CalendarLoginStartResponse struct {
	RedirectLink string `json:"redirect_link"`
	State        string `json:"state"`
}

func FromLoginStartResult(r *commands.LoginStartResult) *CalendarLoginStartResponse {
	return &CalendarLoginStartResponse{
		RedirectLink: r.RedirectLink,
		State:        r.State,
	}
}

type SyncReportResponse struct {
	Enqueued  int `json:"enqueued"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

func FromSyncReport(r *commands.SyncReport) *SyncReportResponse {
	return &SyncReportResponse{
		Enqueued:  r.Enqueued,
		Processed: r.Processed,
		Failed:    r.Failed,
	}
}
