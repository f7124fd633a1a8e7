package workflow

const (
	// Signal names
	PaymentCompletedSignalName = "payment-completed"
	CancelPendingSignalName    = "cancel-pending"
)

// PaymentCompletedSignal is sent when the ledger reports the gating
// invoice as settled (typically from the invoice webhook).
type PaymentCompletedSignal struct {
	InvoiceID int32 `json:"invoice_id"`
}

// CancelPendingSignal abandons the pending push before the invoice
// deadline, e.g. when the invoice is voided.
type CancelPendingSignal struct {
	Reason string `json:"reason"`
}
