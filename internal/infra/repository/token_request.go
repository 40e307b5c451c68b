package repository

import (
	"context"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
)

type TokenRequestQueries interface {
	CreateTokenRequest(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateTokenRequestParams) error
	GetTokenRequest(ctx context.Context, db sqlq.DBTX, state string) (sqlq.TokenRequestRow, error)
	DeleteTokenRequest(ctx context.Context, db sqlq.DBTX, state string) (int64, error)
}

type TokenRequestRepository struct {
	queries TokenRequestQueries
}

func NewTokenRequestRepository(queries TokenRequestQueries) *TokenRequestRepository {
	return &TokenRequestRepository{queries: queries}
}

func (r *TokenRequestRepository) Create(ctx context.Context, tx sqlq.DBTX, req *calendar.OutlookTokenRequestData) error {
	params := sqlq.CreateTokenRequestParams{
		State:      req.State(),
		ResourceID: req.ResourceID(),
		UserID:     req.UserID(),
		ReturnTo:   req.ReturnTo(),
		CreatedAt:  req.CreatedAt(),
	}
	if err := r.queries.CreateTokenRequest(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create token request", err)
	}
	return nil
}

func (r *TokenRequestRepository) FindByState(ctx context.Context, tx sqlq.DBTX, state string) (*calendar.OutlookTokenRequestData, error) {
	row, err := r.queries.GetTokenRequest(ctx, tx, state)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("token request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get token request", err)
	}
	return calendar.ReconstructOutlookTokenRequestData(row.State, row.ResourceID, row.UserID, row.ReturnTo, row.CreatedAt.Time), nil
}

func (r *TokenRequestRepository) Delete(ctx context.Context, tx sqlq.DBTX, state string) error {
	affected, err := r.queries.DeleteTokenRequest(ctx, tx, state)
	if err != nil {
		return infra.WrapRepoErr("failed to delete token request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("token request not found", nil, infra.KindNotFound)
	}
	return nil
}
