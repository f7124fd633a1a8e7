package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
	"encore.app/transfer/repository/transfers"
)

// CancelPending abandons a push that is waiting on payment: the
// pending-push row is removed and the abandonment is logged. Called
// when the gating invoice expires or is voided. Cancelling a service
// with no pending push is a no-op.
func (b *business) CancelPending(ctx context.Context, serviceID int32, reason string) error {
	pending, err := b.transferRepo.GetPendingPush(ctx, serviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to look up pending push"}
	}

	if err := b.transferRepo.DeletePendingPush(ctx, serviceID); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to clear pending push"}
	}

	details, err := json.Marshal(map[string]any{
		"invoice_id":      pending.InvoiceID,
		"recipient_email": pending.RecipientEmail,
		"reason":          reason,
	})
	if err != nil {
		rlog.Error("failed to marshal pending-push cancellation details", "service_id", serviceID, "error", err)
		return nil
	}

	params := transfers.CreateLogParams{
		ServiceID: serviceID,
		ClientID:  pending.ClientID,
		Action:    model.ActionInvoiceExpired,
		Message:   fmt.Sprintf("pending push for service #%d abandoned: %s", serviceID, reason),
		Details:   details,
	}
	if _, err := b.transferRepo.CreateLog(ctx, params); err != nil {
		rlog.Error("failed to log pending-push cancellation", "service_id", serviceID, "error", err)
	}
	return nil
}
