package model

import (
	"strings"
)

// ProviderSettings is the typed push configuration for one remote
// control-plane connection (module row). It is decoded once at the
// repository boundary; the hostname/token pair never travels as an
// untyped blob.
type ProviderSettings struct {
	ModuleRowID       int32  `json:"module_row_id"`
	Hostname          string `json:"hostname"`
	APIToken          string `json:"-"`
	EnableAll         bool   `json:"enable_all"`
	AllowedClientIDs  string `json:"allowed_client_ids"`
	AllowedPackageIDs string `json:"allowed_package_ids"`
	AllowAllPackages  bool   `json:"allow_all_packages"`
	CooldownDays      int32  `json:"push_cooldown_days"`
	PriceCents        int64  `json:"push_price_cents"`
	PriceCurrency     string `json:"push_price_currency"`
	// StrictRemoteErrors aborts the push when the remote owner change
	// reports an error. The default (lenient) commits local ownership
	// anyway because the upstream API is known to report failures for
	// mutations that actually succeeded.
	StrictRemoteErrors bool `json:"strict_remote_errors"`
}

// HasAPIConfig reports whether the connection carries usable API
// credentials.
func (s ProviderSettings) HasAPIConfig() bool {
	return s.Hostname != "" && s.APIToken != ""
}

// AllowedClientIDList parses the comma-separated allow list, trimming
// whitespace and dropping empty entries.
func (s ProviderSettings) AllowedClientIDList() []string {
	return splitIDList(s.AllowedClientIDs)
}

// AllowedPackageIDList parses the comma-separated package allow list.
func (s ProviderSettings) AllowedPackageIDList() []string {
	return splitIDList(s.AllowedPackageIDs)
}

func splitIDList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
