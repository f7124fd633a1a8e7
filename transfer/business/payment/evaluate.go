package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
	"encore.app/transfer/repository/invoices"
	"encore.app/transfer/repository/transfers"
)

// invoiceDueAfter is how long a push invoice stays payable.
const invoiceDueAfter = 7 * 24 * time.Hour

func (b *business) Evaluate(ctx context.Context, client model.Client, serviceID int32, recipientEmail string, priceCents int64, priceCurrency string, invoiceID *int32) (*model.GateResult, error) {
	if priceCents <= 0 {
		return &model.GateResult{Kind: model.GateNoPaymentNeeded}, nil
	}

	// A caller that lost the invoice id falls back to the durable
	// correlation row, so an outstanding invoice is never duplicated.
	if invoiceID == nil {
		pending, err := b.transferRepo.GetPendingPush(ctx, serviceID)
		switch {
		case err == nil && pending.ClientID == client.ID:
			invoiceID = &pending.InvoiceID
		case err != nil && !errors.Is(err, pgx.ErrNoRows):
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up pending push"}
		}
	}

	if invoiceID == nil {
		return b.createInvoice(ctx, client, serviceID, recipientEmail, priceCents, priceCurrency, false)
	}

	invoice, err := b.getInvoice(ctx, *invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Stale reference: the invoice disappeared. Discard and
			// start over.
			return b.createInvoice(ctx, client, serviceID, recipientEmail, priceCents, priceCurrency, true)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load invoice"}
	}

	if invoice.ClientID != client.ID {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "invoice does not belong to this client"}
	}

	if invoice.IsVoid() {
		rlog.Info("push invoice voided, issuing replacement", "service_id", serviceID, "invoice_id", invoice.ID)
		return b.createInvoice(ctx, client, serviceID, recipientEmail, priceCents, priceCurrency, true)
	}

	if !invoice.IsPaid() {
		return &model.GateResult{
			Kind:        model.GatePaymentPending,
			InvoiceID:   invoice.ID,
			AmountCents: invoice.TotalCents,
			Currency:    invoice.Currency,
			DueAt:       invoice.DateDue,
		}, nil
	}

	return &model.GateResult{
		Kind:        model.GatePaymentConfirmed,
		InvoiceID:   invoice.ID,
		AmountCents: invoice.TotalCents,
		Currency:    invoice.Currency,
		DueAt:       invoice.DateDue,
	}, nil
}

func (b *business) CheckPending(ctx context.Context, serviceID int32) (*model.GateResult, error) {
	pending, err := b.transferRepo.GetPendingPush(ctx, serviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "no pending push for this service"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up pending push"}
	}

	invoice, err := b.getInvoice(ctx, pending.InvoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "pending invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load invoice"}
	}

	kind := model.GatePaymentPending
	if invoice.IsPaid() {
		kind = model.GatePaymentConfirmed
	}
	return &model.GateResult{
		Kind:        kind,
		InvoiceID:   invoice.ID,
		AmountCents: invoice.TotalCents,
		Currency:    invoice.Currency,
		DueAt:       invoice.DateDue,
	}, nil
}

// createInvoice bills the push in the client's default currency,
// converting from the settings' base currency when they differ, and
// records the durable pending-push correlation.
func (b *business) createInvoice(ctx context.Context, client model.Client, serviceID int32, recipientEmail string, priceCents int64, priceCurrency string, previousVoided bool) (*model.GateResult, error) {
	clientCurrency := client.DefaultCurrency
	if clientCurrency == "" {
		clientCurrency = priceCurrency
	}

	amountCents := priceCents
	if priceCurrency != clientCurrency {
		converted, err := b.currency.ConvertAmount(ctx, priceCurrency, clientCurrency, priceCents)
		if err != nil {
			return nil, err
		}
		amountCents = converted.ConvertedAmount
	}

	now := b.now()
	invoice, err := b.invoiceRepo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
		ClientID:   client.ID,
		Currency:   clientCurrency,
		TotalCents: amountCents,
		Status:     string(model.InvoiceStatusActive),
		DateBilled: pgtype.Timestamptz{Time: now, Valid: true},
		DateDue:    pgtype.Timestamptz{Time: now.Add(invoiceDueAfter), Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create push invoice"}
	}

	_, err = b.invoiceRepo.CreateInvoiceLine(ctx, invoices.CreateInvoiceLineParams{
		InvoiceID:   invoice.ID,
		ServiceID:   pgtype.Int4{Int32: serviceID, Valid: true},
		Description: fmt.Sprintf("VPS Push Service - Service #%d", serviceID),
		AmountCents: amountCents,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create push invoice line"}
	}

	_, err = b.transferRepo.UpsertPendingPush(ctx, transfers.UpsertPendingPushParams{
		ServiceID:      serviceID,
		ClientID:       client.ID,
		InvoiceID:      invoice.ID,
		RecipientEmail: recipientEmail,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to record pending push"}
	}

	return &model.GateResult{
		Kind:           model.GateInvoiceCreated,
		InvoiceID:      invoice.ID,
		AmountCents:    amountCents,
		Currency:       clientCurrency,
		DueAt:          invoice.DateDue.Time,
		PreviousVoided: previousVoided,
	}, nil
}

func (b *business) getInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.Invoice{
		ID:         dbInvoice.ID,
		ClientID:   dbInvoice.ClientID,
		Currency:   dbInvoice.Currency,
		TotalCents: dbInvoice.TotalCents,
		PaidCents:  dbInvoice.PaidCents,
		Status:     model.InvoiceStatus(dbInvoice.Status),
		DateBilled: dbInvoice.DateBilled.Time,
		DateDue:    dbInvoice.DateDue.Time,
	}, nil
}
