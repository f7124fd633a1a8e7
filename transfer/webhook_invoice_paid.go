package transfer

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/api/serviceerror"

	"encore.app/transfer/workflow"
)

type InvoicePaidRequest struct {
	ServiceID int32 `json:"service_id" validate:"required,min=1"`
	InvoiceID int32 `json:"invoice_id" validate:"required,min=1"`
}

type InvoicePaidResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// InvoicePaid is the ledger's payment notification. It wakes the
// pending-payment workflow for the service so the gated push resumes
// without waiting for the next poll. A payment for a service with no
// pending push is acknowledged and ignored.
//
//encore:api public path=/v1/webhooks/invoices/paid method=POST
func (s *Service) InvoicePaid(ctx context.Context, req *InvoicePaidRequest) (*InvoicePaidResponse, error) {
	workflowID := pendingWorkflowID(req.ServiceID)
	signal := workflow.PaymentCompletedSignal{
		InvoiceID: req.InvoiceID,
	}

	// Signal workflow asynchronously - don't block the webhook response
	runAsync("signal payment completed", func(signalCtx context.Context) error {
		err := s.temporal.SignalWorkflow(signalCtx, workflowID, "", workflow.PaymentCompletedSignalName, signal)
		if err != nil {
			var notFound *serviceerror.NotFound
			if errors.As(err, &notFound) {
				rlog.Info("no pending push workflow for payment", "service_id", req.ServiceID, "invoice_id", req.InvoiceID)
				return nil
			}
			return err
		}
		return nil
	})

	return &InvoicePaidResponse{Acknowledged: true}, nil
}

// Validate implements validation for InvoicePaidRequest
func (r *InvoicePaidRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
