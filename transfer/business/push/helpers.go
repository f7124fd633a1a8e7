package push

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/transfer/model"
	"encore.app/transfer/repository/settings"
	"encore.app/transfer/repository/transfers"
)

// serviceContext is the slice of the service row needed before the
// guarded section takes over.
type serviceContext struct {
	ID        int32
	ClientID  int32
	PackageID pgtype.Int4
}

// lookupClient assembles a model.Client from the clients and contacts
// tables.
func (b *business) lookupClient(ctx context.Context, clientID int32) (*model.Client, error) {
	dbClient, err := b.clientRepo.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "client not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load client"}
	}

	client := &model.Client{
		ID:              dbClient.ID,
		IDValue:         dbClient.IDValue.String,
		DefaultCurrency: dbClient.DefaultCurrency.String,
	}

	contact, err := b.clientRepo.GetContactByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A client without a contact has no usable email; callers
			// decide whether that is fatal.
			return client, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load client contact"}
	}
	client.Email = contact.Email
	client.FirstName = contact.FirstName.String
	client.LastName = contact.LastName.String
	return client, nil
}

func toModelSettings(s settings.PushSetting) model.ProviderSettings {
	return model.ProviderSettings{
		ModuleRowID:        s.ModuleRowID,
		Hostname:           s.Hostname,
		APIToken:           s.ApiToken,
		EnableAll:          s.EnableAll,
		AllowedClientIDs:   s.AllowedClientIds.String,
		AllowedPackageIDs:  s.AllowedPackageIds.String,
		AllowAllPackages:   s.AllowAllPackages,
		CooldownDays:       s.PushCooldownDays,
		PriceCents:         s.PushPriceCents,
		PriceCurrency:      s.PushPriceCurrency,
		StrictRemoteErrors: s.StrictRemoteErrors,
	}
}

// convertDBTransferToModel converts a database transfer row to the
// domain model.
func convertDBTransferToModel(t transfers.PushTransfer) *model.Transfer {
	transfer := &model.Transfer{
		ID:             t.ID,
		ServiceID:      t.ServiceID,
		FromClientID:   t.FromClientID,
		ToClientID:     t.ToClientID,
		FromEmail:      t.FromEmail,
		ToEmail:        t.ToEmail,
		RemoteServerID: t.RemoteServerID,
		Status:         model.TransferStatus(t.Status),
		PriceCents:     t.PushPriceCents,
		TransferredAt:  t.TransferredAt.Time,
		CreatedAt:      t.CreatedAt.Time,
	}
	if t.InvoiceID.Valid {
		id := t.InvoiceID.Int32
		transfer.InvoiceID = &id
	}
	return transfer
}
