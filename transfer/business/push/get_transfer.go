package push

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/transfer/model"
)

func (b *business) GetTransfer(ctx context.Context, id int64) (*model.Transfer, error) {
	dbTransfer, err := b.transferRepo.GetTransfer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "transfer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load transfer"}
	}
	return convertDBTransferToModel(dbTransfer), nil
}
