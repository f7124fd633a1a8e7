package transfer

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/transfer/model"
	"encore.app/transfer/workflow"
)

type PushRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Origin         string `header:"X-Forwarded-For" json:"-"`

	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	InvoiceID      *int32 `json:"invoice_id,omitempty"`
}

type PushResponse struct {
	Result model.PushResult `json:"result"`
}

//encore:api public path=/v1/services/:id/push method=POST tag:idempotency
func (s *Service) PushService(ctx context.Context, id int32, req *PushRequest) (*PushResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid service ID"}
	}

	origin := req.Origin
	if origin == "" {
		origin = "api"
	}

	result, err := s.business.Push(ctx, id, req.RecipientEmail, req.InvoiceID, origin)
	if err != nil {
		rlog.Error("failed to push service", "error", err, "service_id", id)
		return nil, err
	}

	// A payment-gated push gets a babysitter workflow that resumes it
	// once the invoice settles and abandons it at the deadline.
	if result.PaymentRequired && result.InvoiceID != nil {
		if wfErr := s.startPendingPaymentWorkflow(ctx, id, result); wfErr != nil {
			// The push result is still valid; the poll endpoint and
			// webhook remain usable even without the workflow.
			rlog.Error("workflow start issue", "service_id", id, "workflow_id", pendingWorkflowID(id), "error", wfErr)
		}
	}

	return &PushResponse{
		Result: *result,
	}, nil
}

// Validate implements validation for PushRequest using go-playground/validator
func (r *PushRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.InvoiceID != nil && *r.InvoiceID <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invoice_id must be positive"}
	}

	return nil
}

// pendingWorkflowID derives the deterministic workflow id for a
// service's pending push. One service has at most one pending push, so
// the id doubles as a dedup key.
func pendingWorkflowID(serviceID int32) string {
	return fmt.Sprintf("push-pending-%d", serviceID)
}

// startPendingPaymentWorkflow starts the Temporal workflow that waits
// for the gating invoice to settle.
func (s *Service) startPendingPaymentWorkflow(ctx context.Context, serviceID int32, result *model.PushResult) error {
	workflowID := pendingWorkflowID(serviceID)

	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	if result.InvoiceDueAt != nil {
		expiresAt = *result.InvoiceDueAt
	}

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.PendingPaymentWorkflowParams{
		ServiceID:      serviceID,
		InvoiceID:      *result.InvoiceID,
		RecipientEmail: result.RecipientEmail,
		ExpiresAt:      expiresAt,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.PendingPayment, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "service_id", serviceID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
