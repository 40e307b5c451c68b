package unit

import "errors"

var ErrInvalidLevel = errors.New("invalid authorization level")

// AuthorizationLevel is the ordered per-unit role: viewer < manager < admin.
// Ordering is defined only by Compare; never rely on string comparison.
type AuthorizationLevel string

const (
	LevelViewer  AuthorizationLevel = "viewer"
	LevelManager AuthorizationLevel = "manager"
	LevelAdmin   AuthorizationLevel = "admin"
)

var levelRank = map[AuthorizationLevel]int{
	LevelViewer:  1,
	LevelManager: 2,
	LevelAdmin:   3,
}

func NewAuthorizationLevel(s string) (AuthorizationLevel, error) {
	level := AuthorizationLevel(s)
	if !level.IsValid() {
		return "", ErrInvalidLevel
	}
	return level, nil
}

func (l AuthorizationLevel) String() string {
	return string(l)
}

func (l AuthorizationLevel) IsValid() bool {
	_, ok := levelRank[l]
	return ok
}

// Compare returns -1, 0 or 1 as a orders before, equal to or after b.
func Compare(a, b AuthorizationLevel) int {
	ra, rb := levelRank[a], levelRank[b]
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Below returns every level strictly lower than l, ascending.
func (l AuthorizationLevel) Below() []AuthorizationLevel {
	switch l {
	case LevelAdmin:
		return []AuthorizationLevel{LevelViewer, LevelManager}
	case LevelManager:
		return []AuthorizationLevel{LevelViewer}
	default:
		return nil
	}
}

func (l AuthorizationLevel) AtLeast(other AuthorizationLevel) bool {
	return Compare(l, other) >= 0
}

// MaxLevel returns the highest of the given levels, or "" for an empty slice.
func MaxLevel(levels []AuthorizationLevel) AuthorizationLevel {
	var max AuthorizationLevel
	for _, l := range levels {
		if max == "" || Compare(l, max) > 0 {
			max = l
		}
	}
	return max
}

// AllLevels in ascending order.
func AllLevels() []AuthorizationLevel {
	return []AuthorizationLevel{LevelViewer, LevelManager, LevelAdmin}
}
