package transfer

import (
	"context"
	"os"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.app/transfer/business/cooldown"
	"encore.app/transfer/business/currency"
	"encore.app/transfer/business/identity"
	"encore.app/transfer/business/payment"
	"encore.app/transfer/business/push"
	"encore.app/transfer/domain"
	"encore.app/transfer/repository"
	"encore.app/transfer/workflow"
)

var transferDB = sqldb.NewDatabase("transfer", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// taskQueue is the Temporal task queue for pending-payment workflows.
const taskQueue = "transfer-tasks"

//encore:service
type Service struct {
	business push.Business
	payment  payment.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(transferDB)
	repo := repository.NewRepository(pgxdb)

	currencyBusiness := currency.NewCurrencyBusiness(repo.Currencies)
	paymentBusiness := payment.NewPaymentBusiness(repo.Invoices, repo.Transfers, currencyBusiness)
	cooldownBusiness := cooldown.NewCooldownBusiness(repo.Transfers)
	identityBusiness := identity.NewIdentityBusiness(repo.Clients)
	guard := domain.NewPushGuard(pgxdb)

	pushBusiness := push.NewPushBusiness(
		repo.Clients,
		repo.Services,
		repo.Settings,
		repo.Transfers,
		paymentBusiness,
		cooldownBusiness,
		identityBusiness,
		guard,
	)

	temporalHost := os.Getenv("TEMPORAL_HOST_PORT")
	if temporalHost == "" {
		temporalHost = "localhost:7233"
	}

	c, err := client.Dial(client.Options{
		HostPort: temporalHost,
	})
	if err != nil {
		return nil, err
	}
	rlog.Info("connected to temporal", "host", temporalHost)

	workflow.SetActivityDependencies(pushBusiness, paymentBusiness)

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.PendingPayment)
	w.RegisterActivity(workflow.ExecutePushActivity)
	w.RegisterActivity(workflow.CheckInvoicePaidActivity)
	w.RegisterActivity(workflow.CancelPendingPushActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, err
	}

	return &Service{
		business: pushBusiness,
		payment:  paymentBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
