package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/domain/unit"
	reqdto "resource-booking-api/internal/handler/dto/request"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/pkg/clock"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/queries"
	"resource-booking-api/internal/usecase/shared"
)

type LoginStartResult struct {
	RedirectLink string
	State        string
}

type CalendarLinkCommands interface {
	StartLogin(ctx context.Context, actor *queries.AuthorizedUserView, req reqdto.CalendarLoginStartQuery) (*LoginStartResult, error)
	// CompleteLogin consumes the state nonce and returns the stored
	// return_to target the caller must be redirected to.
	CompleteLogin(ctx context.Context, state, code string) (returnTo string, err error)
	Unlink(ctx context.Context, actor *queries.AuthorizedUserView, resourceID uuid.UUID) error
}

type calendarLinkCommandsImpl struct {
	uow      shared.UnitOfWork
	provider CalendarProvider
	users    queries.UserReadStore
	clock    clock.Clock
}

func NewCalendarLinkCommands(uow shared.UnitOfWork, provider CalendarProvider, users queries.UserReadStore, clk clock.Clock) CalendarLinkCommands {
	return &calendarLinkCommandsImpl{
		uow:      uow,
		provider: provider,
		users:    users,
		clock:    clk,
	}
}

func (c *calendarLinkCommandsImpl) StartLogin(ctx context.Context, actor *queries.AuthorizedUserView, req reqdto.CalendarLoginStartQuery) (*LoginStartResult, error) {
	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	resource, err := c.uow.CommandReads().ResourceByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, err
	}
	if err := c.requireManagerAccess(ctx, actor, resource.UnitID); err != nil {
		return nil, err
	}

	target := c.resolveTarget(ctx, actor, req.UserID)

	state := uuid.NewString()
	tokenReq, err := calendar.NewOutlookTokenRequestData(state, resourceID, target, req.ReturnTo, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.TokenRequests().Create(ctx, tx.DB(), tokenReq)
	})
	if err != nil {
		return nil, err
	}

	return &LoginStartResult{
		RedirectLink: c.provider.AuthCodeURL(state),
		State:        state,
	}, nil
}

// resolveTarget picks the user the link will belong to. A superuser may name
// someone else; an unknown target quietly falls back to the superuser
// themselves rather than failing the flow.
func (c *calendarLinkCommandsImpl) resolveTarget(ctx context.Context, actor *queries.AuthorizedUserView, userID string) uuid.UUID {
	if userID == "" || !actor.IsSuperuser {
		return actor.ID
	}
	targetID, err := uuid.Parse(userID)
	if err != nil {
		return actor.ID
	}
	if _, err := c.users.FindByID(ctx, targetID); err != nil {
		slog.Warn("impersonation target lookup failed, using actor",
			"target_id", targetID, "error", err.Error())
		return actor.ID
	}
	return targetID
}

func (c *calendarLinkCommandsImpl) CompleteLogin(ctx context.Context, state, code string) (string, error) {
	var tokenReq *calendar.OutlookTokenRequestData
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		tokenReq, err = tx.TokenRequests().FindByState(ctx, tx.DB(), state)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, errs.ErrInvalidState)
		}
		return "", err
	}

	// A link already in place means a replayed callback. Consume the request
	// row and send the caller where they wanted to go; nothing else changes.
	if _, err := c.uow.CommandReads().CalendarLinkByResource(ctx, tokenReq.ResourceID()); err == nil {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.TokenRequests().Delete(ctx, tx.DB(), state)
		})
		if err != nil {
			return "", err
		}
		return tokenReq.ReturnTo(), nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return "", err
	}

	token, err := c.provider.ExchangeCode(ctx, code)
	if err != nil {
		return "", err
	}
	account, err := c.provider.Me(ctx, token)
	if err != nil {
		return "", err
	}

	link, err := calendar.NewOutlookCalendarLink(tokenReq.ResourceID(), tokenReq.UserID(), token, account.ID)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Local availability periods cannot be represented in the external
		// calendar. They are dropped for good and the cached opening hours
		// are recomputed from the now-empty period set.
		deleted, err := tx.Resources().DeletePeriods(ctx, tx.DB(), tokenReq.ResourceID())
		if err != nil {
			return err
		}
		if deleted > 0 {
			slog.Info("dropped local availability periods at link time",
				"resource_id", tokenReq.ResourceID(), "periods", deleted)
		}
		if err := tx.Resources().UpdateOpeningHours(ctx, tx.DB(), tokenReq.ResourceID(), emptyOpeningHours()); err != nil {
			return err
		}

		if err := tx.CalendarLinks().Create(ctx, tx.DB(), link); err != nil {
			return err
		}
		if _, err := tx.SyncQueue().Enqueue(ctx, tx.DB(), link.ID(), c.clock.Now()); err != nil {
			return err
		}
		return tx.TokenRequests().Delete(ctx, tx.DB(), state)
	})
	if err != nil {
		return "", err
	}

	return tokenReq.ReturnTo(), nil
}

func (c *calendarLinkCommandsImpl) Unlink(ctx context.Context, actor *queries.AuthorizedUserView, resourceID uuid.UUID) error {
	link, err := c.uow.CommandReads().CalendarLinkByResource(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrLinkNotFound
		}
		return err
	}

	resource, err := c.uow.CommandReads().ResourceByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrResourceNotFound
		}
		return err
	}
	if err := c.requireManagerAccess(ctx, actor, resource.UnitID); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CalendarLinks().Delete(ctx, tx.DB(), link.ID())
	})
}

func (c *calendarLinkCommandsImpl) requireManagerAccess(ctx context.Context, actor *queries.AuthorizedUserView, unitID string) error {
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
	if !unit.MaxLevel(levels).AtLeast(unit.LevelManager) {
		return errs.ErrPermissionDenied
	}
	return nil
}

// emptyOpeningHours is the opening-hours document recomputed from a resource
// with no periods left.
func emptyOpeningHours() []byte {
	return []byte(`{"periods":[]}`)
}
