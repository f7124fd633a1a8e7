package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/transfer/repository/clients"
	"encore.app/transfer/repository/currencies"
	"encore.app/transfer/repository/invoices"
	"encore.app/transfer/repository/services"
	"encore.app/transfer/repository/settings"
	"encore.app/transfer/repository/transfers"
)

// Repository combines all domain-specific queriers over the ledger.
type Repository struct {
	Clients    clients.Querier
	Services   services.Querier
	Invoices   invoices.Querier
	Currencies currencies.Querier
	Settings   settings.Querier
	Transfers  transfers.Querier
}

// NewRepository creates a new Repository with all domain queriers.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Clients:    clients.New(db),
		Services:   services.New(db),
		Invoices:   invoices.New(db),
		Currencies: currencies.New(db),
		Settings:   settings.New(db),
		Transfers:  transfers.New(db),
	}
}
