package cooldown

import (
	"context"
	"time"

	"encore.app/transfer/model"
	"encore.app/transfer/repository/transfers"
)

type Business interface {
	Check(ctx context.Context, serviceID int32, cooldownDays int32) (model.CooldownResult, error)
}

type business struct {
	transferRepo transfers.Querier
	now          func() time.Time
}

func NewCooldownBusiness(transferRepo transfers.Querier) Business {
	return &business{
		transferRepo: transferRepo,
		now:          time.Now,
	}
}
