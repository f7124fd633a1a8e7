package model

import (
	"strings"
)

// Client is a billing-ledger account. ID is the internal key; IDValue
// is the external display form. Both appear in allow lists and must be
// treated as equivalent when matching.
type Client struct {
	ID              int32  `json:"id"`
	IDValue         string `json:"id_value"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DefaultCurrency string `json:"default_currency"`
}

// FullName builds the display name used when provisioning the remote
// user, falling back to neutral placeholders for blank parts.
func (c Client) FullName() string {
	first := c.FirstName
	if first == "" {
		first = "User"
	}
	last := c.LastName
	if last == "" {
		last = "Account"
	}
	return strings.TrimSpace(first + " " + last)
}

// HostedService is a provisioned resource owned by a client in the
// billing ledger and operated by the remote control plane.
type HostedService struct {
	ID             int32  `json:"id"`
	ClientID       int32  `json:"client_id"`
	PackageID      *int32 `json:"package_id,omitempty"`
	ModuleRowID    int32  `json:"module_row_id"`
	RemoteServerID int32  `json:"remote_server_id"`
	Status         string `json:"status"`
}
