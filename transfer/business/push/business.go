package push

import (
	"context"
	"time"

	"encore.app/transfer/business/cooldown"
	"encore.app/transfer/business/identity"
	"encore.app/transfer/business/payment"
	"encore.app/transfer/domain"
	"encore.app/transfer/model"
	"encore.app/transfer/repository/clients"
	"encore.app/transfer/repository/services"
	"encore.app/transfer/repository/settings"
	"encore.app/transfer/repository/transfers"
	"encore.app/transfer/virtfusion"
)

// Business orchestrates VPS ownership transfers: eligibility, payment
// gating, identity reconciliation, the remote owner change, and the
// local ledger commit with its audit trail.
type Business interface {
	// Push runs one transfer attempt. A push that needs payment is not
	// an error: the result carries the invoice to pay and the caller
	// re-invokes Push once it settles. Origin is recorded in the audit
	// trail (caller address or "workflow").
	Push(ctx context.Context, serviceID int32, recipientEmail string, invoiceID *int32, origin string) (*model.PushResult, error)

	// CheckPayment reports the payment state of a pending push.
	CheckPayment(ctx context.Context, serviceID int32) (*model.GateResult, error)

	// Eligibility reports whether the service can currently be pushed
	// and what it would cost.
	Eligibility(ctx context.Context, serviceID int32) (*model.Eligibility, error)

	// CancelPending abandons a push waiting on payment, clearing its
	// pending-push row and logging the abandonment.
	CancelPending(ctx context.Context, serviceID int32, reason string) error

	GetTransfer(ctx context.Context, id int64) (*model.Transfer, error)
	ListTransfersByService(ctx context.Context, serviceID int32) ([]*model.Transfer, error)
}

type business struct {
	clientRepo   clients.Querier
	serviceRepo  services.Querier
	settingsRepo settings.Querier
	transferRepo transfers.Querier
	payment      payment.Business
	cooldown     cooldown.Business
	identity     identity.Business
	guard        domain.Guard

	// newAPI builds a control-plane client for one connection's
	// credentials; swapped out in tests.
	newAPI func(hostname, token string) virtfusion.API
	now    func() time.Time
}

func NewPushBusiness(
	clientRepo clients.Querier,
	serviceRepo services.Querier,
	settingsRepo settings.Querier,
	transferRepo transfers.Querier,
	paymentBusiness payment.Business,
	cooldownBusiness cooldown.Business,
	identityBusiness identity.Business,
	guard domain.Guard,
) Business {
	return &business{
		clientRepo:   clientRepo,
		serviceRepo:  serviceRepo,
		settingsRepo: settingsRepo,
		transferRepo: transferRepo,
		payment:      paymentBusiness,
		cooldown:     cooldownBusiness,
		identity:     identityBusiness,
		guard:        guard,
		newAPI: func(hostname, token string) virtfusion.API {
			return virtfusion.New(hostname, token)
		},
		now: time.Now,
	}
}
