package repository

import (
	"context"

	"goalkick/internal/domain/buyer"
	"goalkick/internal/infra"
	sqlc "goalkick/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BuyerWriteQueries interface {
	UpsertBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertBuyerParams) (sqlc.Buyers, error)
}

type BuyerRepository struct {
	queries BuyerWriteQueries
	db      sqlc.DBTX
}

func NewBuyerRepository(queries BuyerWriteQueries, db sqlc.DBTX) *BuyerRepository {
	return &BuyerRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert keys buyers by phone; a returning buyer gets the latest name.
func (r *BuyerRepository) Upsert(ctx context.Context, tx sqlc.DBTX, phone buyer.Phone, name buyer.Name) (uuid.UUID, error) {
	row, err := r.queries.UpsertBuyer(ctx, tx, sqlc.UpsertBuyerParams{
		Phone: phone.String(),
		Name:  name.String(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert buyer", err)
	}
	return row.ID, nil
}
