package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/transfer/business/payment"
	"encore.app/transfer/business/push"
	"encore.app/transfer/model"
)

// PaymentStillPendingErrorType marks an ExecutePush attempt that found
// the invoice still unpaid. The workflow treats it as "keep waiting",
// not as a failure, so it must not be retried as one.
const PaymentStillPendingErrorType = "PaymentStillPending"

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	PushBusiness    push.Business
	PaymentBusiness payment.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(pushBusiness push.Business, paymentBusiness payment.Business) {
	activityDeps = &ActivityDependencies{
		PushBusiness:    pushBusiness,
		PaymentBusiness: paymentBusiness,
	}
}

// ExecutePushActivity resumes a payment-gated push once its invoice has
// settled.
func ExecutePushActivity(ctx context.Context, serviceID int32, recipientEmail string, invoiceID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing execute push activity", "serviceID", serviceID, "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.PushBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.PushBusiness.Push(ctx, serviceID, recipientEmail, &invoiceID, "workflow")
	if err != nil {
		logger.Error("Failed to execute push", "serviceID", serviceID, "error", err)
		return err
	}

	if result.PaymentRequired {
		logger.Warn("Push still gated on payment", "serviceID", serviceID, "invoiceID", invoiceID)
		return temporal.NewNonRetryableApplicationError("invoice is not settled yet", PaymentStillPendingErrorType, nil)
	}

	logger.Info("Successfully executed push", "serviceID", serviceID, "transferID", result.TransferID)
	return nil
}

// CheckInvoicePaidActivity reports whether the invoice gating a pending
// push has settled.
func CheckInvoicePaidActivity(ctx context.Context, serviceID int32) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing check invoice paid activity", "serviceID", serviceID)

	if activityDeps == nil || activityDeps.PaymentBusiness == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	gate, err := activityDeps.PaymentBusiness.CheckPending(ctx, serviceID)
	if err != nil {
		logger.Error("Failed to check pending invoice", "serviceID", serviceID, "error", err)
		return false, err
	}

	return gate.Kind == model.GatePaymentConfirmed, nil
}

// CancelPendingPushActivity abandons a pending push whose invoice
// expired or was voided.
func CancelPendingPushActivity(ctx context.Context, serviceID int32, reason string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing cancel pending push activity", "serviceID", serviceID, "reason", reason)

	if activityDeps == nil || activityDeps.PushBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.PushBusiness.CancelPending(ctx, serviceID, reason)
	if err != nil {
		logger.Error("Failed to cancel pending push", "serviceID", serviceID, "error", err)
		return err
	}

	logger.Info("Successfully cancelled pending push", "serviceID", serviceID, "reason", reason)
	return nil
}
