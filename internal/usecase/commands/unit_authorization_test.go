//go:build unit

package commands_test

import (
	"context"
	"testing"

	"resource-booking-api/internal/domain/unit"
	reqdto "resource-booking-api/internal/handler/dto/request"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/shared"
	"resource-booking-api/tests/common/builder"
	sharedmock "resource-booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUnitID = "tprek:162"

func grantSetup(t *testing.T) (*sharedmock.FakeUoW, commands.UnitAuthorizationCommands) {
	t.Helper()
	uow := sharedmock.NewFakeUoW()
	uow.Reads.Units[testUnitID] = &shared.UnitSnapshot{ID: testUnitID, Name: "Central Library", TimeZone: "Europe/Helsinki"}
	return uow, commands.NewUnitAuthorizationCommands(uow)
}

func grantedLevels(created []*unit.UnitAuthorization) []unit.AuthorizationLevel {
	out := make([]unit.AuthorizationLevel, 0, len(created))
	for _, row := range created {
		out = append(out, row.Level())
	}
	return out
}

func TestUnitAuthorizationCommands_Grant(t *testing.T) {
	ctx := context.Background()
	admin := builder.NewUserBuilder().AsGeneralAdmin().BuildReadModel()
	targetID := uuid.New()

	t.Run("success: admin grant backfills manager and viewer", func(t *testing.T) {
		uow, cmd := grantSetup(t)

		result, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, unit.LevelAdmin, result.Level)
		assert.ElementsMatch(t,
			[]unit.AuthorizationLevel{unit.LevelAdmin, unit.LevelManager, unit.LevelViewer},
			grantedLevels(uow.Tx.AuthRepo.Created))
		assert.ElementsMatch(t,
			[]unit.AuthorizationLevel{unit.LevelManager, unit.LevelViewer},
			result.EnsuredLevels)
		assert.True(t, result.StaffPromoted)
		assert.Equal(t, []uuid.UUID{targetID}, uow.Tx.UserRepo.StaffSet)
	})

	t.Run("success: existing viewer caps backfill below viewer", func(t *testing.T) {
		uow, cmd := grantSetup(t)
		uow.Tx.AuthRepo.Existing = []unit.AuthorizationLevel{unit.LevelViewer}

		result, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "admin",
		})
		require.NoError(t, err)

		// Viewer is already held, so only the requested level lands.
		assert.Equal(t, []unit.AuthorizationLevel{unit.LevelAdmin}, grantedLevels(uow.Tx.AuthRepo.Created))
		assert.Empty(t, result.EnsuredLevels)
	})

	t.Run("success: replaying the same grant creates nothing new", func(t *testing.T) {
		uow, cmd := grantSetup(t)
		uow.Tx.AuthRepo.Existing = []unit.AuthorizationLevel{
			unit.LevelViewer, unit.LevelManager,
		}
		uow.Tx.UserRepo.AlreadyStaff = true

		result, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "manager",
		})
		require.NoError(t, err)

		assert.Empty(t, uow.Tx.AuthRepo.Created)
		assert.Empty(t, result.EnsuredLevels)
		// The target already held staff, so no promotion is reported.
		assert.False(t, result.StaffPromoted)
	})

	t.Run("success: concurrent duplicate insert is absorbed", func(t *testing.T) {
		uow, cmd := grantSetup(t)
		uow.Tx.AuthRepo.CreateErr = func(auth *unit.UnitAuthorization) error {
			if auth.Level() == unit.LevelViewer {
				return infra.WrapRepoErr("duplicate", assert.AnError, infra.KindDuplicateKey)
			}
			return nil
		}

		result, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "manager",
		})
		require.NoError(t, err)

		assert.Equal(t, []unit.AuthorizationLevel{unit.LevelManager}, grantedLevels(uow.Tx.AuthRepo.Created))
		assert.True(t, result.StaffPromoted)
	})

	t.Run("success: unit admin without general access can grant", func(t *testing.T) {
		uow, cmd := grantSetup(t)
		actor := builder.NewUserBuilder().AsStaff().BuildReadModel()
		uow.Reads.SetLevels(testUnitID, actor.ID, unit.LevelViewer, unit.LevelManager, unit.LevelAdmin)

		_, err := cmd.Grant(ctx, actor, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "viewer",
		})
		require.NoError(t, err)
	})

	t.Run("error: manager-level actor is refused", func(t *testing.T) {
		uow, cmd := grantSetup(t)
		actor := builder.NewUserBuilder().AsStaff().BuildReadModel()
		uow.Reads.SetLevels(testUnitID, actor.ID, unit.LevelViewer, unit.LevelManager)

		_, err := cmd.Grant(ctx, actor, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "viewer",
		})
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Empty(t, uow.Tx.AuthRepo.Created)
	})

	t.Run("error: nil actor is refused", func(t *testing.T) {
		_, cmd := grantSetup(t)

		_, err := cmd.Grant(ctx, nil, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "viewer",
		})
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("error: unknown unit", func(t *testing.T) {
		_, cmd := grantSetup(t)

		_, err := cmd.Grant(ctx, admin, "tprek:missing", reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "viewer",
		})
		assert.ErrorIs(t, err, errs.ErrUnitNotFound)
	})

	t.Run("error: unknown level", func(t *testing.T) {
		_, cmd := grantSetup(t)

		_, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "owner",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidLevel)
	})

	t.Run("error: malformed target user id", func(t *testing.T) {
		_, cmd := grantSetup(t)

		_, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: "not-a-uuid",
			Level:  "viewer",
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
	})

	t.Run("error: target user vanished before staff promotion", func(t *testing.T) {
		uow, cmd := grantSetup(t)
		uow.Tx.UserRepo.SetStaffErr = infra.WrapRepoErr("user missing", assert.AnError, infra.KindNotFound)

		_, err := cmd.Grant(ctx, admin, testUnitID, reqdto.GrantAuthorizationRequest{
			UserID: targetID.String(),
			Level:  "viewer",
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
	})
}
