package transfer

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
)

type CheckPaymentResponse struct {
	Gate model.GateResult `json:"gate"`
}

// CheckPayment reports the payment state of a service's pending push so
// clients can poll while an invoice is outstanding.
//
//encore:api public path=/v1/services/:id/push/payment method=GET
func (s *Service) CheckPayment(ctx context.Context, id int32) (*CheckPaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid service ID"}
	}

	gate, err := s.business.CheckPayment(ctx, id)
	if err != nil {
		rlog.Error("failed to check pending payment", "error", err, "service_id", id)
		return nil, err
	}

	return &CheckPaymentResponse{
		Gate: *gate,
	}, nil
}
