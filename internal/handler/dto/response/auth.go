package response

import (
	"resource-booking-api/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	IsStaff        bool    `json:"is_staff"`
	IsGeneralAdmin bool    `json:"is_general_admin"`
	IsSuperuser    bool    `json:"is_superuser"`
	LastLoginAt    *int64  `json:"last_login_at,omitempty"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	resp := &UserResponse{
		ID:             v.ID.String(),
		Email:          v.Email,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		IsStaff:        v.IsStaff,
		IsGeneralAdmin: v.IsGeneralAdmin,
		IsSuperuser:    v.IsSuperuser,
	}
	if v.LastLoginAt != nil {
		ts := v.LastLoginAt.Unix()
		resp.LastLoginAt = &ts
	}
	return resp
}
