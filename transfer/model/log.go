package model

import (
	"encoding/json"
	"time"
)

// TransferLog is one append-only audit entry. Entries are never
// updated or deleted.
type TransferLog struct {
	ID         int64           `json:"id"`
	TransferID *int64          `json:"transfer_id,omitempty"`
	ServiceID  int32           `json:"service_id"`
	ClientID   int32           `json:"client_id"`
	Action     string          `json:"action"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
	IPAddress  *string         `json:"ip_address,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Audit action tags.
const (
	ActionVPSTransfer    = "vps_transfer"
	ActionPushTransfer   = "push_transfer"
	ActionInvoiceExpired = "push_invoice_expired"
)
