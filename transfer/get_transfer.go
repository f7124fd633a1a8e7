package transfer

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
)

type TransferResponse struct {
	Transfer model.Transfer `json:"transfer"`
}

//encore:api public path=/v1/transfers/:id method=GET
func (s *Service) GetTransfer(ctx context.Context, id int64) (*TransferResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid transfer ID"}
	}

	result, err := s.business.GetTransfer(ctx, id)
	if err != nil {
		rlog.Error("failed to get transfer", "error", err, "id", id)
		return nil, err
	}

	return &TransferResponse{
		Transfer: *result,
	}, nil
}
