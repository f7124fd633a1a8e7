package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/domain"
	"encore.app/transfer/model"
	"encore.app/transfer/repository/transfers"
)

// recordTransfer inserts the single completed transfer record inside
// the guarded transaction.
func (b *business) recordTransfer(
	ctx context.Context,
	tx domain.ServiceTx,
	serviceID int32,
	from model.Client,
	to model.Client,
	remoteServerID int32,
	invoiceID *int32,
	priceCents int64,
) (*model.Transfer, error) {
	params := transfers.CreateTransferParams{
		ServiceID:      serviceID,
		FromClientID:   from.ID,
		ToClientID:     to.ID,
		FromEmail:      from.Email,
		ToEmail:        to.Email,
		RemoteServerID: remoteServerID,
		Status:         string(model.TransferStatusCompleted),
		PushPriceCents: priceCents,
		TransferredAt:  pgtype.Timestamptz{Time: b.now(), Valid: true},
	}
	if invoiceID != nil {
		params.InvoiceID = pgtype.Int4{Int32: *invoiceID, Valid: true}
	}

	dbTransfer, err := tx.RecordTransfer(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// The invoice already funded an earlier transfer.
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "invoice already applied to an earlier transfer"}
		}
		return nil, err
	}
	return convertDBTransferToModel(dbTransfer), nil
}

// auditTransfer appends the vps_transfer log entry once the transfer
// has committed. It runs outside the guarded transaction so a failed
// audit write can never roll back a completed transfer, and an
// uncommitted transfer is never audited.
func (b *business) auditTransfer(ctx context.Context, transfer *model.Transfer, origin string) {
	details, err := json.Marshal(map[string]any{
		"service_id":       transfer.ServiceID,
		"from_client_id":   transfer.FromClientID,
		"to_client_id":     transfer.ToClientID,
		"remote_server_id": transfer.RemoteServerID,
		"invoice_id":       transfer.InvoiceID,
		"push_price_cents": transfer.PriceCents,
	})
	if err != nil {
		rlog.Error("failed to marshal transfer audit details", "transfer_id", transfer.ID, "error", err)
		return
	}

	params := transfers.CreateLogParams{
		TransferID: pgtype.Int8{Int64: transfer.ID, Valid: true},
		ServiceID:  transfer.ServiceID,
		ClientID:   transfer.FromClientID,
		Action:     model.ActionVPSTransfer,
		Message:    fmt.Sprintf("VPS #%d transferred from %s to %s", transfer.ServiceID, transfer.FromEmail, transfer.ToEmail),
		Details:    details,
	}
	if origin != "" {
		params.IpAddress = pgtype.Text{String: origin, Valid: true}
	}

	if _, err := b.transferRepo.CreateLog(ctx, params); err != nil {
		rlog.Error("failed to write transfer audit entry", "transfer_id", transfer.ID, "error", err)
	}
}
