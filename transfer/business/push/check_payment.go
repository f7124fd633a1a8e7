package push

import (
	"context"

	"encore.app/transfer/model"
)

// CheckPayment reports the payment state of the invoice recorded for a
// service's pending push without advancing the transfer.
func (b *business) CheckPayment(ctx context.Context, serviceID int32) (*model.GateResult, error) {
	return b.payment.CheckPending(ctx, serviceID)
}
