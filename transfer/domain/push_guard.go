package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/transfer/repository/services"
	"encore.app/transfer/repository/transfers"
)

// Guard serializes push attempts per service. The remote owner change
// is not idempotent across two different target users, so concurrent
// pushes for the same service must not both get past the cooldown and
// payment checks.
type Guard interface {
	WithServiceLock(ctx context.Context, serviceID int32, fn func(tx ServiceTx) error) error
}

// ServiceTx is the transactional view handed to the guarded callback.
// The service row stays locked until the callback returns; local
// commits made through it become durable only when the whole guarded
// run succeeds.
type ServiceTx interface {
	// Service returns the locked service row, re-read under the lock.
	Service() services.Service
	// CommitOwnership reassigns the service to a new owning client.
	CommitOwnership(ctx context.Context, newClientID int32) error
	// RecordTransfer inserts the completed transfer record.
	RecordTransfer(ctx context.Context, arg transfers.CreateTransferParams) (transfers.PushTransfer, error)
	// ClearPending removes the pending-push correlation row.
	ClearPending(ctx context.Context) error
}

// PushGuard implements Guard with a database transaction and a
// SELECT ... FOR UPDATE on the service row. Owning the transaction
// boundary here keeps the business layer free of pgx plumbing.
type PushGuard struct {
	db *pgxpool.Pool
}

func NewPushGuard(db *pgxpool.Pool) *PushGuard {
	return &PushGuard{db: db}
}

func (g *PushGuard) WithServiceLock(ctx context.Context, serviceID int32, fn func(tx ServiceTx) error) error {
	tx, err := g.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txServices := services.New(tx)

	// The row lock is held until commit/rollback, so a concurrent push
	// for the same service blocks here and observes this run's result.
	svc, err := txServices.GetServiceForUpdate(ctx, serviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "service not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock service for push"}
	}

	sTx := &serviceTx{
		svc:       svc,
		services:  txServices,
		transfers: transfers.New(tx),
	}
	if err := fn(sTx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit push transaction"}
	}
	return nil
}

type serviceTx struct {
	svc       services.Service
	services  *services.Queries
	transfers *transfers.Queries
}

func (t *serviceTx) Service() services.Service {
	return t.svc
}

func (t *serviceTx) CommitOwnership(ctx context.Context, newClientID int32) error {
	_, err := t.services.UpdateServiceClient(ctx, services.UpdateServiceClientParams{
		ID:       t.svc.ID,
		ClientID: newClientID,
	})
	return err
}

func (t *serviceTx) RecordTransfer(ctx context.Context, arg transfers.CreateTransferParams) (transfers.PushTransfer, error) {
	return t.transfers.CreateTransfer(ctx, arg)
}

func (t *serviceTx) ClearPending(ctx context.Context) error {
	return t.transfers.DeletePendingPush(ctx, t.svc.ID)
}
