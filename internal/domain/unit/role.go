package unit

// RoleScope distinguishes direct unit roles from unit-group roles.
// A mixed role list is partitioned by scope instead of runtime type checks.
type RoleScope string

const (
	ScopeUnit      RoleScope = "unit"
	ScopeUnitGroup RoleScope = "unit_group"
)

// Role is a tagged union of {unit role, unit-group role} at a given level.
type Role struct {
	Scope RoleScope
	Level AuthorizationLevel
}

func UnitRole(level AuthorizationLevel) Role {
	return Role{Scope: ScopeUnit, Level: level}
}

func UnitGroupRole(level AuthorizationLevel) Role {
	return Role{Scope: ScopeUnitGroup, Level: level}
}

// PartitionRoles splits a mixed role list into unit-scoped and group-scoped
// level sets. Invalid levels are dropped.
func PartitionRoles(roles []Role) (unitLevels, groupLevels []AuthorizationLevel) {
	for _, r := range roles {
		if !r.Level.IsValid() {
			continue
		}
		switch r.Scope {
		case ScopeUnit:
			unitLevels = append(unitLevels, r.Level)
		case ScopeUnitGroup:
			groupLevels = append(groupLevels, r.Level)
		}
	}
	return unitLevels, groupLevels
}

// ContainsAdminRole reports whether the list requests an admin-equivalent
// role in either scope. General admins short-circuit on such requests.
func ContainsAdminRole(roles []Role) bool {
	for _, r := range roles {
		if r.Level == LevelAdmin {
			return true
		}
	}
	return false
}
