package response

import (
	"resource-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UnitResponse struct {
	ID                         string  `json:"id"`
	Name                       string  `json:"name"`
	TimeZone                   string  `json:"time_zone"`
	StreetAddress              *string `json:"street_address,omitempty"`
	ZipCode                    *string `json:"zip_code,omitempty"`
	Phone                      *string `json:"phone,omitempty"`
	Email                      *string `json:"email,omitempty"`
	WwwURL                     *string `json:"www_url,omitempty"`
	ManagerEmail               *string `json:"manager_email,omitempty"`
	ReservableMaxDaysInAdvance *int32  `json:"reservable_max_days_in_advance,omitempty"`
	ReservableMinDaysInAdvance *int32  `json:"reservable_min_days_in_advance,omitempty"`
	DataSource                 *string `json:"data_source,omitempty"`
}

func FromUnitView(v *queries.UnitView) *UnitResponse {
	var resp UnitResponse
	// Field names line up with the view; copier handles the plumbing.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromUnitViews(views []*queries.UnitView) []*UnitResponse {
	res := make([]*UnitResponse, len(views))
	for i, v := range views {
		res[i] = FromUnitView(v)
	}
	return res
}

type UnitAuthorizationResponse struct {
	ID     string `json:"id"`
	UnitID string `json:"unit_id"`
	UserID string `json:"user_id"`
	Level  string `json:"level"`
}

func FromAuthorizationViews(views []*queries.UnitAuthorizationView) []*UnitAuthorizationResponse {
	res := make([]*UnitAuthorizationResponse, len(views))
	for i, v := range views {
		res[i] = &UnitAuthorizationResponse{
			ID:     v.ID.String(),
			UnitID: v.UnitID,
			UserID: v.UserID.String(),
			Level:  v.Level,
		}
	}
	return res
}

type GrantedAuthorizationResponse struct {
	UnitID        string   `json:"unit_id"`
	UserID        string   `json:"user_id"`
	Level         string   `json:"level"`
	EnsuredLevels []string `json:"ensured_levels"`
	StaffPromoted bool     `json:"staff_promoted"`
}

type ApproverResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func FromApproverViews(views []*queries.ApproverView) []*ApproverResponse {
	res := make([]*ApproverResponse, len(views))
	for i, v := range views {
		res[i] = &ApproverResponse{
			ID:        v.ID.String(),
			Email:     v.Email,
			FirstName: v.FirstName,
			LastName:  v.LastName,
		}
	}
	return res
}
