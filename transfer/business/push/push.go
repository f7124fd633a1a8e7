package push

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/business/access"
	"encore.app/transfer/domain"
	"encore.app/transfer/model"
	"encore.app/transfer/virtfusion"
)

// Push runs the transfer saga. Step order matters: every check that
// can fail cheaply runs before the first remote call, the service row
// stays locked from the cooldown check through the local commit, and
// once the remote owner change has been issued any local failure is
// reported as data loss so operators can reconcile.
func (b *business) Push(ctx context.Context, serviceID int32, recipientEmail string, invoiceID *int32, origin string) (*model.PushResult, error) {
	svc, owner, providerSettings, err := b.loadPushContext(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !access.Evaluate(*owner, packageID(svc.PackageID), *providerSettings) {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "you do not have permission to use this feature"}
	}

	if !providerSettings.HasAPIConfig() {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "control plane API configuration not found"}
	}

	var (
		result     *model.PushResult
		transfer   *model.Transfer
		remoteSent bool
	)
	err = b.guard.WithServiceLock(ctx, serviceID, func(tx domain.ServiceTx) error {
		res, tr, sent, err := b.pushLocked(ctx, tx, *owner, *providerSettings, recipientEmail, invoiceID)
		result = res
		transfer = tr
		remoteSent = sent
		return err
	})
	if err != nil {
		if remoteSent {
			// Ownership may have changed remotely without a matching
			// local commit. Escalate so this is never mistaken for a
			// pre-flight validation failure.
			rlog.Error("local commit failed after remote owner change", "service_id", serviceID, "error", err)
			return nil, &errs.Error{
				Code:    errs.DataLoss,
				Message: "remote ownership may have changed but the local commit failed; manual reconciliation required: " + errMessage(err),
			}
		}
		return nil, err
	}

	if transfer != nil {
		b.auditTransfer(ctx, transfer, origin)
	}
	return result, nil
}

// pushLocked is the body of the saga, run with the service row locked.
// The returned bool reports whether the remote owner change was
// already issued when an error occurred.
func (b *business) pushLocked(ctx context.Context, tx domain.ServiceTx, owner model.Client, providerSettings model.ProviderSettings, recipientEmail string, invoiceID *int32) (*model.PushResult, *model.Transfer, bool, error) {
	svc := tx.Service()

	cool, err := b.cooldown.Check(ctx, svc.ID, providerSettings.CooldownDays)
	if err != nil {
		return nil, nil, false, err
	}
	if !cool.Allowed {
		return nil, nil, false, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("this service was recently pushed; please wait %d more day(s) before pushing again", cool.RemainingDays),
		}
	}

	gate, err := b.payment.Evaluate(ctx, owner, svc.ID, recipientEmail, providerSettings.PriceCents, providerSettings.PriceCurrency, invoiceID)
	if err != nil {
		return nil, nil, false, err
	}
	switch gate.Kind {
	case model.GateInvoiceCreated, model.GatePaymentPending:
		// Expected pause, not a failure. The pending-push row carries
		// the correlation; the caller (or the pending-payment
		// workflow) re-invokes Push once the invoice settles.
		msg := "payment is required; please pay the invoice to continue"
		if gate.PreviousVoided {
			msg = "previous invoice was voided; a new invoice has been created"
		}
		gateID := gate.InvoiceID
		result := &model.PushResult{
			Message:         msg,
			PaymentRequired: true,
			PreviousVoided:  gate.PreviousVoided,
			InvoiceID:       &gateID,
			PriceCents:      gate.AmountCents,
			PriceCurrency:   gate.Currency,
			RecipientEmail:  recipientEmail,
		}
		if !gate.DueAt.IsZero() {
			due := gate.DueAt
			result.InvoiceDueAt = &due
		}
		return result, nil, false, nil
	}

	// Same-owner fail-fast: cheap check before any remote call.
	if strings.EqualFold(owner.Email, recipientEmail) {
		return nil, nil, false, &errs.Error{Code: errs.InvalidArgument, Message: "cannot transfer to same owner"}
	}

	recipient, err := b.lookupRecipient(ctx, recipientEmail)
	if err != nil {
		return nil, nil, false, err
	}

	api := b.newAPI(providerSettings.Hostname, providerSettings.APIToken)

	remoteUserID, err := b.identity.Resolve(ctx, api, *recipient)
	if err != nil {
		return nil, nil, false, err
	}

	alreadyOwned := false
	if err := api.TransferServer(ctx, svc.RemoteServerID, remoteUserID); err != nil {
		switch {
		case virtfusion.IsAlreadyOwner(err):
			// The desired end state already holds.
			alreadyOwned = true
		case providerSettings.StrictRemoteErrors:
			return nil, nil, false, &errs.Error{
				Code:    errs.Unavailable,
				Message: "remote ownership change failed: " + virtfusion.RemoteMessage(err),
			}
		default:
			// Lenient policy: the control plane is known to report
			// errors for owner changes that actually succeeded, so a
			// failed response does not abort the local commit.
			rlog.Warn("remote transfer reported an error, committing locally anyway",
				"service_id", svc.ID, "remote_server_id", svc.RemoteServerID, "error", err)
		}
	}

	// Point of no return: from here on, failures are data loss.
	if err := tx.CommitOwnership(ctx, recipient.ID); err != nil {
		return nil, nil, true, err
	}

	transfer, err := b.recordTransfer(ctx, tx, svc.ID, owner, *recipient, svc.RemoteServerID, b.effectiveInvoiceID(gate, invoiceID), gate.AmountCents)
	if err != nil {
		return nil, nil, true, err
	}

	if err := tx.ClearPending(ctx); err != nil {
		return nil, nil, true, err
	}

	msg := fmt.Sprintf("VPS successfully transferred to %s", recipient.Email)
	if alreadyOwned {
		msg += " (already owned in the control plane)"
	}
	return &model.PushResult{
		Success:        true,
		Message:        msg,
		AlreadyOwned:   alreadyOwned,
		RecipientEmail: recipient.Email,
		TransferID:     &transfer.ID,
		PriceCents:     gate.AmountCents,
		PriceCurrency:  gate.Currency,
		InvoiceID:      b.effectiveInvoiceID(gate, invoiceID),
	}, transfer, true, nil
}

// loadPushContext resolves the service, its owning client, and the
// provider settings governing its connection.
func (b *business) loadPushContext(ctx context.Context, serviceID int32) (*serviceContext, *model.Client, *model.ProviderSettings, error) {
	svcRow, err := b.serviceRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, &errs.Error{Code: errs.NotFound, Message: "service not found"}
		}
		return nil, nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to load service"}
	}

	owner, err := b.lookupClient(ctx, svcRow.ClientID)
	if err != nil {
		return nil, nil, nil, err
	}

	// A service without a package→connection mapping is ineligible.
	if !svcRow.ModuleRowID.Valid {
		return nil, nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "push is not configured for this service"}
	}

	dbSettings, err := b.settingsRepo.GetSettingsByModuleRow(ctx, svcRow.ModuleRowID.Int32)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "push settings not found"}
		}
		return nil, nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to load push settings"}
	}

	providerSettings := toModelSettings(dbSettings)
	svc := &serviceContext{
		ID:        svcRow.ID,
		ClientID:  svcRow.ClientID,
		PackageID: svcRow.PackageID,
	}
	return svc, owner, &providerSettings, nil
}

// lookupRecipient maps a recipient email to a ledger client, requiring
// the contact to exist before any remote work happens.
func (b *business) lookupRecipient(ctx context.Context, email string) (*model.Client, error) {
	contact, err := b.clientRepo.GetContactByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "recipient not found in system"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up recipient"}
	}
	return b.lookupClient(ctx, contact.ClientID)
}

func (b *business) effectiveInvoiceID(gate *model.GateResult, supplied *int32) *int32 {
	if gate.Kind == model.GatePaymentConfirmed {
		id := gate.InvoiceID
		return &id
	}
	return supplied
}

func errMessage(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func packageID(id pgtype.Int4) *int32 {
	if !id.Valid {
		return nil
	}
	v := id.Int32
	return &v
}
