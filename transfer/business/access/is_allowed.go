// Package access decides whether a client may push a given service.
// Decisions are pure functions over the provided inputs; nothing here
// touches the ledger or the control plane.
package access

import (
	"strconv"

	"encore.app/transfer/model"
)

// IsAllowed reports whether the client passes the account-level allow
// list: enable_all grants everyone, otherwise either the internal id
// or the external display id must appear in the trimmed,
// comma-separated list.
func IsAllowed(clientID int32, idValue string, settings model.ProviderSettings) bool {
	if settings.EnableAll {
		return true
	}
	internal := strconv.FormatInt(int64(clientID), 10)
	for _, allowed := range settings.AllowedClientIDList() {
		if allowed == internal || (idValue != "" && allowed == idValue) {
			return true
		}
	}
	return false
}

// PackageAllowed reports whether the service's package passes the
// package restriction. A package the ledger cannot determine (no
// pricing mapping) is never the client's fault, so it does not revoke
// eligibility; a known package is checked against the allow list
// unless all packages are allowed.
func PackageAllowed(packageID *int32, settings model.ProviderSettings) bool {
	if packageID == nil {
		return true
	}
	if settings.AllowAllPackages {
		return true
	}
	want := strconv.FormatInt(int64(*packageID), 10)
	for _, allowed := range settings.AllowedPackageIDList() {
		if allowed == want {
			return true
		}
	}
	return false
}

// Evaluate composes the account and package checks: package
// restrictions revoke eligibility even when the account-level check
// passed.
func Evaluate(client model.Client, packageID *int32, settings model.ProviderSettings) bool {
	return IsAllowed(client.ID, client.IDValue, settings) && PackageAllowed(packageID, settings)
}
