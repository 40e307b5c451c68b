package request

import (
	"strings"

	"resource-booking-api/internal/domain/unit"
)

type GrantAuthorizationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Level  string `json:"level" binding:"required,oneof=viewer manager admin"`
}

func (r *GrantAuthorizationRequest) DomainLevel() (unit.AuthorizationLevel, error) {
	return unit.NewAuthorizationLevel(r.Level)
}

// RoleFilterQuery mirrors ?role=manager&scope=unit_group style unit filters.
// Repeated role params arrive comma separated.
type RoleFilterQuery struct {
	Role  string `form:"role"`
	Scope string `form:"scope"`
}

// ToRoles expands the query into the role union the listing accepts. An empty
// scope requests both unit and group scoped grants at each level.
func (q *RoleFilterQuery) ToRoles() []unit.Role {
	var roles []unit.Role
	for _, raw := range strings.Split(q.Role, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		level := unit.AuthorizationLevel(name)
		switch q.Scope {
		case "unit":
			roles = append(roles, unit.UnitRole(level))
		case "unit_group":
			roles = append(roles, unit.UnitGroupRole(level))
		default:
			roles = append(roles, unit.UnitRole(level), unit.UnitGroupRole(level))
		}
	}
	return roles
}
