package workflow

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// pollInterval bounds how stale the payment state can get if the
// invoice webhook is never delivered.
const pollInterval = 15 * time.Minute

// PendingPaymentWorkflowParams contains parameters for starting the pending payment workflow
type PendingPaymentWorkflowParams struct {
	ServiceID      int32     `json:"service_id"`
	InvoiceID      int32     `json:"invoice_id"`
	RecipientEmail string    `json:"recipient_email"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// PendingPayment babysits a push that paused for payment. It waits for
// the invoice to settle (webhook signal or periodic poll) and then
// resumes the push; if the invoice deadline passes first, the pending
// push is abandoned.
func PendingPayment(ctx workflow.Context, params PendingPaymentWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting pending payment workflow", "serviceID", params.ServiceID, "invoiceID", params.InvoiceID, "expiresAt", params.ExpiresAt)

	now := workflow.Now(ctx)
	if !params.ExpiresAt.After(now) {
		logger.Warn("Invoice already expired, abandoning pending push", "serviceID", params.ServiceID, "invoiceID", params.InvoiceID)
		return cancelPendingPush(ctx, params.ServiceID, "invoice_expired")
	}

	expiry := workflow.NewTimer(ctx, params.ExpiresAt.Sub(now))

	paymentCh := workflow.GetSignalChannel(ctx, PaymentCompletedSignalName)
	cancelCh := workflow.GetSignalChannel(ctx, CancelPendingSignalName)

	done := false
	var workflowErr error

	for !done {
		poll := workflow.NewTimer(ctx, pollInterval)
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PaymentCompletedSignal
			c.Receive(ctx, &signal)
			logger.Info("Received payment completed signal", "serviceID", params.ServiceID, "invoiceID", signal.InvoiceID)
			done, workflowErr = resumePush(ctx, logger, params)
		})

		selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CancelPendingSignal
			c.Receive(ctx, &signal)
			logger.Info("Received cancel signal", "serviceID", params.ServiceID, "reason", signal.Reason)

			err := cancelPendingPush(ctx, params.ServiceID, signal.Reason)
			if err != nil {
				logger.Error("Failed to cancel pending push", "serviceID", params.ServiceID, "error", err)
				workflowErr = err
			}
			done = true
		})

		selector.AddFuture(poll, func(f workflow.Future) {
			paid, err := checkInvoicePaid(ctx, params.ServiceID)
			if err != nil {
				logger.Error("Failed to poll invoice state", "serviceID", params.ServiceID, "invoiceID", params.InvoiceID, "error", err)
				return
			}
			if !paid {
				return
			}
			logger.Info("Poll found invoice settled", "serviceID", params.ServiceID, "invoiceID", params.InvoiceID)
			done, workflowErr = resumePush(ctx, logger, params)
		})

		selector.AddFuture(expiry, func(f workflow.Future) {
			logger.Info("Invoice deadline reached, abandoning pending push", "serviceID", params.ServiceID, "invoiceID", params.InvoiceID)

			err := cancelPendingPush(ctx, params.ServiceID, "invoice_expired")
			if err != nil {
				logger.Error("Failed to abandon pending push", "serviceID", params.ServiceID, "error", err)
				workflowErr = err
			}
			done = true
		})

		selector.Select(ctx)
	}

	logger.Info("Pending payment workflow completed", "serviceID", params.ServiceID)
	return workflowErr
}

// resumePush re-runs the push now that payment has (reportedly)
// settled. A push that still reports payment pending keeps the
// workflow waiting instead of failing it.
func resumePush(ctx workflow.Context, logger log, params PendingPaymentWorkflowParams) (done bool, err error) {
	pushErr := executePush(ctx, params.ServiceID, params.RecipientEmail, params.InvoiceID)
	if pushErr == nil {
		return true, nil
	}

	var appErr *temporal.ApplicationError
	if errors.As(pushErr, &appErr) && appErr.Type() == PaymentStillPendingErrorType {
		logger.Warn("Push still gated on payment, continuing to wait", "serviceID", params.ServiceID, "invoiceID", params.InvoiceID)
		return false, nil
	}

	logger.Error("Failed to resume push after payment", "serviceID", params.ServiceID, "error", pushErr)
	return true, pushErr
}

// log is the subset of the temporal logger the workflow helpers use.
type log interface {
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// executePush executes the ExecutePush activity
func executePush(ctx workflow.Context, serviceID int32, recipientEmail string, invoiceID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ExecutePushActivity, serviceID, recipientEmail, invoiceID).Get(ctx, nil)
}

// checkInvoicePaid executes the CheckInvoicePaid activity
func checkInvoicePaid(ctx workflow.Context, serviceID int32) (bool, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var paid bool
	err := workflow.ExecuteActivity(activityCtx, CheckInvoicePaidActivity, serviceID).Get(ctx, &paid)
	return paid, err
}

// cancelPendingPush executes the CancelPendingPush activity
func cancelPendingPush(ctx workflow.Context, serviceID int32, reason string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, CancelPendingPushActivity, serviceID, reason).Get(ctx, nil)
}
