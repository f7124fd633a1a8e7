package cooldown

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/transfer/model"
)

const day = 24 * time.Hour

// Check decides whether enough time has elapsed since the service was
// last pushed. A non-positive cooldown always allows; otherwise the
// most recent completed transfer anchors the window and the remaining
// whole days are rounded up.
func (b *business) Check(ctx context.Context, serviceID int32, cooldownDays int32) (model.CooldownResult, error) {
	if cooldownDays <= 0 {
		return model.CooldownResult{Allowed: true}, nil
	}

	last, err := b.transferRepo.GetLastCompletedTransfer(ctx, serviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CooldownResult{Allowed: true}, nil
		}
		return model.CooldownResult{}, &errs.Error{Code: errs.Internal, Message: "failed to look up transfer history"}
	}

	cooldownEnd := last.TransferredAt.Time.Add(time.Duration(cooldownDays) * day)
	now := b.now()
	if now.Before(cooldownEnd) {
		remaining := cooldownEnd.Sub(now)
		days := int32((remaining + day - 1) / day)
		return model.CooldownResult{Allowed: false, RemainingDays: days}, nil
	}

	return model.CooldownResult{Allowed: true}, nil
}
