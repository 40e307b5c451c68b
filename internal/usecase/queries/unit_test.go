//go:build unit

package queries_test

import (
	"context"
	"testing"

	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/usecase/queries"
	"resource-booking-api/tests/common/builder"
	queriesmock "resource-booking-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUnitID = "tprek:162"

func unitQuerySetup(t *testing.T) (*queriesmock.MockUnitReadStore, queries.UnitQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUnitReadStore(ctrl)
	return readStore, queries.NewUnitQueries(readStore)
}

func TestUnitQueries_GetUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		view := builder.NewUnitBuilder().BuildReadModel()
		readStore.EXPECT().FindByID(gomock.Any(), testUnitID).Return(view, nil)

		got, err := q.GetUnit(ctx, testUnitID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: not found", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		readStore.EXPECT().FindByID(gomock.Any(), testUnitID).
			Return(nil, infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound))

		_, err := q.GetUnit(ctx, testUnitID)
		assert.ErrorIs(t, err, queries.ErrUnitNotFound)
	})
}

func TestUnitQueries_ListManagedUnits(t *testing.T) {
	ctx := context.Background()
	units := []*queries.UnitView{builder.NewUnitBuilder().BuildReadModel()}

	t.Run("success: general admin sees every unit", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsGeneralAdmin().BuildReadModel()
		readStore.EXPECT().List(gomock.Any()).Return(units, nil)

		got, err := q.ListManagedUnits(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, units, got)
	})

	t.Run("success: staff gets only admin-granted units", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsStaff().BuildReadModel()
		readStore.EXPECT().ListManagedBy(gomock.Any(), actor.ID).Return(units, nil)

		got, err := q.ListManagedUnits(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, units, got)
	})

	t.Run("success: no grants yields an empty list", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().BuildReadModel()
		readStore.EXPECT().ListManagedBy(gomock.Any(), actor.ID).Return(nil, nil)

		got, err := q.ListManagedUnits(ctx, actor)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUnitQueries_ListUnitsByRoles(t *testing.T) {
	ctx := context.Background()
	units := []*queries.UnitView{builder.NewUnitBuilder().BuildReadModel()}

	t.Run("success: filters by unit and group levels", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsStaff().BuildReadModel()
		readStore.EXPECT().ListByRoleLevels(gomock.Any(), actor.ID, []string{"manager"}, []string{"admin"}).
			Return(units, nil)

		got, err := q.ListUnitsByRoles(ctx, actor, []unit.Role{
			unit.UnitRole(unit.LevelManager),
			unit.UnitGroupRole(unit.LevelAdmin),
		})
		require.NoError(t, err)
		assert.Equal(t, units, got)
	})

	t.Run("success: superuser skips the grant filter", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsSuperuser().BuildReadModel()
		readStore.EXPECT().List(gomock.Any()).Return(units, nil)

		got, err := q.ListUnitsByRoles(ctx, actor, []unit.Role{unit.UnitRole(unit.LevelViewer)})
		require.NoError(t, err)
		assert.Equal(t, units, got)
	})

	t.Run("success: general admin skips the filter when an admin role is requested", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsGeneralAdmin().BuildReadModel()
		readStore.EXPECT().List(gomock.Any()).Return(units, nil)

		got, err := q.ListUnitsByRoles(ctx, actor, []unit.Role{
			unit.UnitRole(unit.LevelViewer),
			unit.UnitGroupRole(unit.LevelAdmin),
		})
		require.NoError(t, err)
		assert.Equal(t, units, got)
	})

	t.Run("success: general admin requesting lower roles is filtered by grants", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsGeneralAdmin().BuildReadModel()
		readStore.EXPECT().ListByRoleLevels(gomock.Any(), actor.ID, []string{"viewer"}, []string{}).
			Return(nil, nil)

		got, err := q.ListUnitsByRoles(ctx, actor, []unit.Role{unit.UnitRole(unit.LevelViewer)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: only unknown levels requested", func(t *testing.T) {
		_, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().BuildReadModel()

		_, err := q.ListUnitsByRoles(ctx, actor, []unit.Role{unit.UnitRole("owner")})
		assert.ErrorIs(t, err, queries.ErrNoRolesRequested)
	})
}

func TestUnitQueries_ListHighestAuthorizations(t *testing.T) {
	ctx := context.Background()
	rows := []*queries.UnitAuthorizationView{
		{UnitID: testUnitID, Level: "admin"},
	}

	t.Run("success: unit manager can list", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsStaff().BuildReadModel()
		readStore.EXPECT().FindByID(gomock.Any(), testUnitID).Return(builder.NewUnitBuilder().BuildReadModel(), nil)
		readStore.EXPECT().AuthorizationLevels(gomock.Any(), testUnitID, actor.ID).
			Return([]unit.AuthorizationLevel{unit.LevelViewer, unit.LevelManager}, nil)
		readStore.EXPECT().HighestAuthorizationsPerUser(gomock.Any(), testUnitID).Return(rows, nil)

		got, err := q.ListHighestAuthorizations(ctx, actor, testUnitID)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("error: viewer-only actor is refused", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsStaff().BuildReadModel()
		readStore.EXPECT().FindByID(gomock.Any(), testUnitID).Return(builder.NewUnitBuilder().BuildReadModel(), nil)
		readStore.EXPECT().AuthorizationLevels(gomock.Any(), testUnitID, actor.ID).
			Return([]unit.AuthorizationLevel{unit.LevelViewer}, nil)

		_, err := q.ListHighestAuthorizations(ctx, actor, testUnitID)
		assert.ErrorIs(t, err, queries.ErrUnitAccessDenied)
	})

	t.Run("error: unknown unit", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsGeneralAdmin().BuildReadModel()
		readStore.EXPECT().FindByID(gomock.Any(), testUnitID).
			Return(nil, infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound))

		_, err := q.ListHighestAuthorizations(ctx, actor, testUnitID)
		assert.ErrorIs(t, err, queries.ErrUnitNotFound)
	})
}

func TestUnitQueries_ListApprovers(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns staff holding approver-capable levels", func(t *testing.T) {
		readStore, q := unitQuerySetup(t)
		actor := builder.NewUserBuilder().AsGeneralAdmin().BuildReadModel()
		approvers := []*queries.ApproverView{{Email: "manager@example.com"}}
		readStore.EXPECT().FindByID(gomock.Any(), testUnitID).Return(builder.NewUnitBuilder().BuildReadModel(), nil)
		readStore.EXPECT().Approvers(gomock.Any(), testUnitID).Return(approvers, nil)

		got, err := q.ListApprovers(ctx, actor, testUnitID)
		require.NoError(t, err)
		assert.Equal(t, approvers, got)
	})
}
