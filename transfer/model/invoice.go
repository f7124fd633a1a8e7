package model

import (
	"time"
)

type Invoice struct {
	ID         int32         `json:"id"`
	ClientID   int32         `json:"client_id"`
	Currency   string        `json:"currency"`
	TotalCents int64         `json:"total_cents"`
	PaidCents  int64         `json:"paid_cents"`
	Status     InvoiceStatus `json:"status"`
	DateBilled time.Time     `json:"date_billed"`
	DateDue    time.Time     `json:"date_due"`
}

type InvoiceStatus string

const (
	InvoiceStatusActive InvoiceStatus = "active"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// voidStatuses covers every spelling the ledger has been observed to
// use for a dead invoice.
var voidStatuses = map[InvoiceStatus]bool{
	"void":      true,
	"voided":    true,
	"canceled":  true,
	"cancelled": true,
}

// IsVoid reports whether the invoice can no longer be paid and must be
// replaced.
func (i Invoice) IsVoid() bool {
	return voidStatuses[i.Status]
}

// IsPaid reports whether the invoice has been settled: either the
// ledger marked it paid, or it is still active but fully covered.
func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid ||
		(i.Status == InvoiceStatusActive && i.PaidCents >= i.TotalCents)
}

// GateResult is the payment gate's verdict for one push attempt.
type GateResult struct {
	Kind           GateKind  `json:"kind"`
	InvoiceID      int32     `json:"invoice_id,omitempty"`
	AmountCents    int64     `json:"amount_cents,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	DueAt          time.Time `json:"due_at,omitempty"`
	PreviousVoided bool      `json:"previous_voided,omitempty"`
}

type GateKind string

const (
	GateNoPaymentNeeded  GateKind = "no_payment_needed"
	GateInvoiceCreated   GateKind = "invoice_created"
	GatePaymentPending   GateKind = "payment_pending"
	GatePaymentConfirmed GateKind = "payment_confirmed"
)
