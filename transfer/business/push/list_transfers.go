package push

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/transfer/model"
)

func (b *business) ListTransfersByService(ctx context.Context, serviceID int32) ([]*model.Transfer, error) {
	dbTransfers, err := b.transferRepo.ListTransfersByService(ctx, serviceID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list transfers"}
	}

	transfers := make([]*model.Transfer, 0, len(dbTransfers))
	for _, t := range dbTransfers {
		transfers = append(transfers, convertDBTransferToModel(t))
	}
	return transfers, nil
}
