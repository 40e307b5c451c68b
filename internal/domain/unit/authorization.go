package unit

import (
	"github.com/google/uuid"
)

// UnitAuthorization grants a user a level on a unit. The (authorized, subject,
// level) triple is unique in the store.
//
// Invariant (monotonic downward closure): whenever a user holds level L on a
// unit, rows must also exist for every level strictly below L for the same
// (user, unit) pair. LevelsToEnsure computes the rows a grant must backfill.
type UnitAuthorization struct {
	id         uuid.UUID
	subjectID  string
	authorized uuid.UUID
	level      AuthorizationLevel
}

func NewUnitAuthorization(subjectID string, authorized uuid.UUID, level AuthorizationLevel) (*UnitAuthorization, error) {
	if !level.IsValid() {
		return nil, ErrInvalidLevel
	}
	return &UnitAuthorization{
		id:         uuid.New(),
		subjectID:  subjectID,
		authorized: authorized,
		level:      level,
	}, nil
}

func ReconstructUnitAuthorization(id uuid.UUID, subjectID string, authorized uuid.UUID, level AuthorizationLevel) *UnitAuthorization {
	return &UnitAuthorization{
		id:         id,
		subjectID:  subjectID,
		authorized: authorized,
		level:      level,
	}
}

// CompareTo orders two authorizations purely by level. Subject and user do
// not participate, which is what "highest per user" reductions rely on.
func (a *UnitAuthorization) CompareTo(other *UnitAuthorization) int {
	return Compare(a.level, other.level)
}

// LevelsToEnsure returns the lower levels a grant of the receiver's level must
// materialize, given the levels already held on the same (user, unit) pair.
// With no existing lower levels every level below the grant is needed; when
// some exist, backfill happens below the highest existing one instead, which
// repairs out-of-order grants.
func (a *UnitAuthorization) LevelsToEnsure(existingBelow []AuthorizationLevel) []AuthorizationLevel {
	if len(existingBelow) == 0 {
		return a.level.Below()
	}
	return MaxLevel(existingBelow).Below()
}

func (a *UnitAuthorization) ID() uuid.UUID             { return a.id }
func (a *UnitAuthorization) SubjectID() string         { return a.subjectID }
func (a *UnitAuthorization) AuthorizedID() uuid.UUID   { return a.authorized }
func (a *UnitAuthorization) Level() AuthorizationLevel { return a.level }
