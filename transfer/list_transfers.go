package transfer

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
)

type ListTransfersResponse struct {
	Transfers []model.Transfer `json:"transfers"`
}

// ListTransfers returns the transfer history of one service, newest
// first.
//
//encore:api public path=/v1/services/:id/transfers method=GET
func (s *Service) ListTransfers(ctx context.Context, id int32) (*ListTransfersResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid service ID"}
	}

	transfers, err := s.business.ListTransfersByService(ctx, id)
	if err != nil {
		rlog.Error("failed to list transfers", "error", err, "service_id", id)
		return nil, err
	}

	response := &ListTransfersResponse{
		Transfers: make([]model.Transfer, len(transfers)),
	}
	for i, t := range transfers {
		response.Transfers[i] = *t
	}

	return response, nil
}
