package payment

import (
	"context"
	"time"

	"encore.app/transfer/business/currency"
	"encore.app/transfer/model"
	"encore.app/transfer/repository/invoices"
	"encore.app/transfer/repository/transfers"
)

// Business is the payment gate: it decides whether a priced push may
// proceed, creating or inspecting an invoice as needed.
type Business interface {
	// Evaluate gates one push attempt. It is idempotent: repeated calls
	// with the same outstanding invoice never create a second one. The
	// correlation between a push and its invoice is durable (the
	// push_pending row keyed by service id), so callers do not need to
	// carry the invoice id themselves.
	Evaluate(ctx context.Context, client model.Client, serviceID int32, recipientEmail string, priceCents int64, priceCurrency string, invoiceID *int32) (*model.GateResult, error)

	// CheckPending reports the payment state of the invoice currently
	// recorded for a service's pending push.
	CheckPending(ctx context.Context, serviceID int32) (*model.GateResult, error)
}

type business struct {
	invoiceRepo  invoices.Querier
	transferRepo transfers.Querier
	currency     currency.Business
	now          func() time.Time
}

func NewPaymentBusiness(invoiceRepo invoices.Querier, transferRepo transfers.Querier, currencyBusiness currency.Business) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		transferRepo: transferRepo,
		currency:     currencyBusiness,
		now:          time.Now,
	}
}
