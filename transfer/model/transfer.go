package model

import (
	"time"
)

type Transfer struct {
	ID             int64          `json:"id"`
	ServiceID      int32          `json:"service_id"`
	FromClientID   int32          `json:"from_client_id"`
	ToClientID     int32          `json:"to_client_id"`
	FromEmail      string         `json:"from_email"`
	ToEmail        string         `json:"to_email"`
	RemoteServerID int32          `json:"remote_server_id"`
	Status         TransferStatus `json:"status"`
	InvoiceID      *int32         `json:"invoice_id,omitempty"`
	PriceCents     int64          `json:"price_cents"`
	TransferredAt  time.Time      `json:"transferred_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

type TransferStatus string

const (
	TransferStatusCompleted TransferStatus = "completed"
)

// PushResult is the structured outcome returned to callers. A push that
// pauses for payment is not an error: Success is false, PaymentRequired
// is true and InvoiceID tells the caller what to pay.
type PushResult struct {
	Success         bool       `json:"success"`
	Message         string     `json:"message"`
	PaymentRequired bool       `json:"payment_required"`
	PreviousVoided  bool       `json:"previous_voided"`
	AlreadyOwned    bool       `json:"already_owned"`
	InvoiceID       *int32     `json:"invoice_id,omitempty"`
	InvoiceDueAt    *time.Time `json:"invoice_due_at,omitempty"`
	PriceCents      int64      `json:"price_cents,omitempty"`
	PriceCurrency   string     `json:"price_currency,omitempty"`
	RecipientEmail  string     `json:"recipient_email,omitempty"`
	TransferID      *int64     `json:"transfer_id,omitempty"`
}

// CooldownResult reports whether a service may be pushed again and, if
// not, how many whole days remain.
type CooldownResult struct {
	Allowed       bool  `json:"allowed"`
	RemainingDays int32 `json:"remaining_days"`
}

// Eligibility is the client-facing summary of whether a service can be
// pushed right now and what it would cost.
type Eligibility struct {
	Allowed       bool           `json:"allowed"`
	PriceCents    int64          `json:"price_cents"`
	PriceCurrency string         `json:"price_currency"`
	CooldownDays  int32          `json:"cooldown_days"`
	Cooldown      CooldownResult `json:"cooldown"`
}
