package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"resource-booking-api/internal/domain/unit"
	reqdto "resource-booking-api/internal/handler/dto/request"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/queries"
	"resource-booking-api/internal/usecase/shared"
)

type GrantResult struct {
	UnitID        string
	UserID        uuid.UUID
	Level         unit.AuthorizationLevel
	EnsuredLevels []unit.AuthorizationLevel
	StaffPromoted bool
}

type UnitAuthorizationCommands interface {
	Grant(ctx context.Context, actor *queries.AuthorizedUserView, unitID string, req reqdto.GrantAuthorizationRequest) (*GrantResult, error)
}

type unitAuthorizationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUnitAuthorizationCommands(uow shared.UnitOfWork) UnitAuthorizationCommands {
	return &unitAuthorizationCommandsImpl{uow: uow}
}

// Grant gives a user a level on a unit and backfills every missing lower
// level, so that holding a level always implies holding the ones below it.
// Replaying the same grant is a no-op: existing rows are left alone and the
// unique constraint absorbs concurrent duplicates.
func (c *unitAuthorizationCommandsImpl) Grant(ctx context.Context, actor *queries.AuthorizedUserView, unitID string, req reqdto.GrantAuthorizationRequest) (*GrantResult, error) {
	level, err := req.DomainLevel()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidLevel)
	}
	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	if _, err := c.uow.CommandReads().UnitByID(ctx, unitID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnitNotFound
		}
		return nil, err
	}
	if err := c.requireAdminAccess(ctx, actor, unitID); err != nil {
		return nil, err
	}

	result := &GrantResult{
		UnitID: unitID,
		UserID: targetID,
		Level:  level,
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.UnitAuthorizations().LevelsFor(ctx, tx.DB(), unitID, targetID)
		if err != nil {
			return err
		}

		grant, err := unit.NewUnitAuthorization(unitID, targetID, level)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidLevel)
		}

		toCreate := append([]unit.AuthorizationLevel{level}, grant.LevelsToEnsure(lowerThan(existing, level))...)
		for _, lv := range toCreate {
			if containsLevel(existing, lv) {
				continue
			}
			row, err := unit.NewUnitAuthorization(unitID, targetID, lv)
			if err != nil {
				return errs.Mark(err, errs.ErrInvalidLevel)
			}
			if err := tx.UnitAuthorizations().Create(ctx, tx.DB(), row); err != nil {
				// A concurrent grant for the same triple means the row is
				// already in place, which is the outcome we wanted.
				if infra.IsKind(err, infra.KindDuplicateKey) {
					slog.Debug("authorization row already present",
						"unit_id", unitID, "user_id", targetID, "level", lv.String())
					continue
				}
				return err
			}
			if lv != level {
				result.EnsuredLevels = append(result.EnsuredLevels, lv)
			}
		}

		// Any unit-level grant marks the user as staff so that staff-only
		// surfaces open up without a separate admin step.
		promoted, err := tx.Users().SetStaff(ctx, tx.DB(), targetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrDomainValidationFailed)
			}
			return err
		}
		result.StaffPromoted = promoted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *unitAuthorizationCommandsImpl) requireAdminAccess(ctx context.Context, actor *queries.AuthorizedUserView, unitID string) error {
	if actor == nil {
		return errs.ErrPermissionDenied
	}
	if actor.HasGeneralAccess() {
		return nil
	}
	levels, err := c.uow.CommandReads().AuthorizationLevels(ctx, unitID, actor.ID)
	if err != nil {
		return err
	}
	if !unit.MaxLevel(levels).AtLeast(unit.LevelAdmin) {
		return errs.ErrPermissionDenied
	}
	return nil
}

func lowerThan(levels []unit.AuthorizationLevel, bound unit.AuthorizationLevel) []unit.AuthorizationLevel {
	var out []unit.AuthorizationLevel
	for _, lv := range levels {
		if unit.Compare(lv, bound) < 0 {
			out = append(out, lv)
		}
	}
	return out
}

func containsLevel(levels []unit.AuthorizationLevel, target unit.AuthorizationLevel) bool {
	for _, lv := range levels {
		if lv == target {
			return true
		}
	}
	return false
}
