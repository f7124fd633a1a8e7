package identity

import (
	"context"

	"encore.app/transfer/model"
	"encore.app/transfer/repository/clients"
	"encore.app/transfer/virtfusion"
)

// Business maps a ledger client to a control-plane user, creating one
// when absent.
type Business interface {
	Resolve(ctx context.Context, api virtfusion.API, recipient model.Client) (int32, error)
}

type business struct {
	clientRepo clients.Querier
}

func NewIdentityBusiness(clientRepo clients.Querier) Business {
	return &business{
		clientRepo: clientRepo,
	}
}
