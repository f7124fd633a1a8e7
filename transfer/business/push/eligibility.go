package push

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/transfer/business/access"
	"encore.app/transfer/model"
)

// Eligibility answers "can this service be pushed right now, and what
// would it cost" without touching the control plane or creating any
// invoice.
func (b *business) Eligibility(ctx context.Context, serviceID int32) (*model.Eligibility, error) {
	svc, owner, providerSettings, err := b.loadPushContext(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !access.Evaluate(*owner, packageID(svc.PackageID), *providerSettings) {
		return nil, &errs.Error{Code: errs.PermissionDenied, Message: "you do not have permission to use this feature"}
	}

	cool, err := b.cooldown.Check(ctx, serviceID, providerSettings.CooldownDays)
	if err != nil {
		return nil, err
	}

	return &model.Eligibility{
		Allowed:       cool.Allowed,
		PriceCents:    providerSettings.PriceCents,
		PriceCurrency: providerSettings.PriceCurrency,
		CooldownDays:  providerSettings.CooldownDays,
		Cooldown:      cool,
	}, nil
}
