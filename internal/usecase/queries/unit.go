package queries

import (
	"context"

	"github.com/google/uuid"

	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/pkg/errs"
)

var (
	ErrUnitNotFound     = errs.New("unit not found")
	ErrUnitAccessDenied = errs.New("unit access denied")
	ErrNoRolesRequested = errs.New("no valid roles requested")
)

type UnitQueries interface {
	GetUnit(ctx context.Context, unitID string) (*UnitView, error)
	ListUnits(ctx context.Context) ([]*UnitView, error)
	ListManagedUnits(ctx context.Context, actor *AuthorizedUserView) ([]*UnitView, error)
	ListUnitsByRoles(ctx context.Context, actor *AuthorizedUserView, roles []unit.Role) ([]*UnitView, error)
	ListHighestAuthorizations(ctx context.Context, actor *AuthorizedUserView, unitID string) ([]*UnitAuthorizationView, error)
	ListApprovers(ctx context.Context, actor *AuthorizedUserView, unitID string) ([]*ApproverView, error)
}

type UnitReadStore interface {
	FindByID(ctx context.Context, id string) (*UnitView, error)
	List(ctx context.Context) ([]*UnitView, error)
	ListManagedBy(ctx context.Context, userID uuid.UUID) ([]*UnitView, error)
	ListByRoleLevels(ctx context.Context, userID uuid.UUID, unitLevels, groupLevels []string) ([]*UnitView, error)
	HighestAuthorizationsPerUser(ctx context.Context, unitID string) ([]*UnitAuthorizationView, error)
	Approvers(ctx context.Context, unitID string) ([]*ApproverView, error)
	AuthorizationLevels(ctx context.Context, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error)
}

type unitQueriesImpl struct {
	readStore UnitReadStore
}

func NewUnitQueries(readStore UnitReadStore) UnitQueries {
	return &unitQueriesImpl{
		readStore: readStore,
	}
}

func (q *unitQueriesImpl) GetUnit(ctx context.Context, unitID string) (*UnitView, error) {
	view, err := q.readStore.FindByID(ctx, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *unitQueriesImpl) ListUnits(ctx context.Context) ([]*UnitView, error) {
	return q.readStore.List(ctx)
}

// ListManagedUnits returns the units the actor administers. General admins and
// superusers manage everything, so the grant tables are not consulted.
func (q *unitQueriesImpl) ListManagedUnits(ctx context.Context, actor *AuthorizedUserView) ([]*UnitView, error) {
	if actor.HasGeneralAccess() {
		return q.readStore.List(ctx)
	}
	return q.readStore.ListManagedBy(ctx, actor.ID)
}

// ListUnitsByRoles filters units by an arbitrary mixture of unit-scoped and
// group-scoped role requirements. Roles carrying an unknown level were already
// dropped by PartitionRoles; if nothing valid remains the request is refused
// rather than silently matching everything. Superusers hold every role;
// general admins hold only the admin-equivalent ones, so a request for lower
// roles still goes through the grant filter.
func (q *unitQueriesImpl) ListUnitsByRoles(ctx context.Context, actor *AuthorizedUserView, roles []unit.Role) ([]*UnitView, error) {
	if actor.IsSuperuser || (actor.IsGeneralAdmin && unit.ContainsAdminRole(roles)) {
		return q.readStore.List(ctx)
	}

	unitLevels, groupLevels := unit.PartitionRoles(roles)
	if len(unitLevels) == 0 && len(groupLevels) == 0 {
		return nil, ErrNoRolesRequested
	}

	return q.readStore.ListByRoleLevels(ctx, actor.ID, levelStrings(unitLevels), levelStrings(groupLevels))
}

// ListHighestAuthorizations reduces the unit's grants to one row per user, the
// strongest one. Requires manager access on the unit.
func (q *unitQueriesImpl) ListHighestAuthorizations(ctx context.Context, actor *AuthorizedUserView, unitID string) ([]*UnitAuthorizationView, error) {
	if err := q.requireManagerAccess(ctx, actor, unitID); err != nil {
		return nil, err
	}
	return q.readStore.HighestAuthorizationsPerUser(ctx, unitID)
}

func (q *unitQueriesImpl) ListApprovers(ctx context.Context, actor *AuthorizedUserView, unitID string) ([]*ApproverView, error) {
	if err := q.requireManagerAccess(ctx, actor, unitID); err != nil {
		return nil, err
	}
	return q.readStore.Approvers(ctx, unitID)
}

func (q *unitQueriesImpl) requireManagerAccess(ctx context.Context, actor *AuthorizedUserView, unitID string) error {
	if actor.HasGeneralAccess() {
		return q.ensureUnitExists(ctx, unitID)
	}

	if err := q.ensureUnitExists(ctx, unitID); err != nil {
		return err
	}

	levels, err := q.readStore.AuthorizationLevels(ctx, unitID, actor.ID)
	if err != nil {
		return err
	}
	for _, level := range levels {
		if level.AtLeast(unit.LevelManager) {
			return nil
		}
	}
	return ErrUnitAccessDenied
}

func (q *unitQueriesImpl) ensureUnitExists(ctx context.Context, unitID string) error {
	if _, err := q.readStore.FindByID(ctx, unitID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUnitNotFound
		}
		return err
	}
	return nil
}

func levelStrings(levels []unit.AuthorizationLevel) []string {
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		out = append(out, l.String())
	}
	return out
}
