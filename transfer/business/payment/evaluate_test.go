package payment

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/transfer/mocks/business/currency_business"
	"encore.app/transfer/mocks/repository/invoice_repo"
	"encore.app/transfer/mocks/repository/transfer_repo"
	"encore.app/transfer/model"
	"encore.app/transfer/repository/invoices"
	"encore.app/transfer/repository/transfers"
)

type paymentMocks struct {
	invoiceRepo  *invoice_repo.MockQuerier
	transferRepo *transfer_repo.MockQuerier
	currency     *currency_business.MockBusiness
}

func newPaymentBusiness(t *testing.T, now time.Time) (*business, *paymentMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &paymentMocks{
		invoiceRepo:  invoice_repo.NewMockQuerier(ctrl),
		transferRepo: transfer_repo.NewMockQuerier(ctrl),
		currency:     currency_business.NewMockBusiness(ctrl),
	}
	b := &business{
		invoiceRepo:  m.invoiceRepo,
		transferRepo: m.transferRepo,
		currency:     m.currency,
		now:          func() time.Time { return now },
	}
	return b, m
}

var testClient = model.Client{ID: 7, Email: "owner@example.com", DefaultCurrency: "USD"}

func dbInvoice(id, clientID int32, total, paid int64, status string) invoices.Invoice {
	return invoices.Invoice{
		ID:         id,
		ClientID:   clientID,
		Currency:   "USD",
		TotalCents: total,
		PaidCents:  paid,
		Status:     status,
	}
}

func TestEvaluateFreePush(t *testing.T) {
	b, _ := newPaymentBusiness(t, time.Now())

	gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 0, "USD", nil)
	assert.NoError(t, err)
	assert.Equal(t, model.GateNoPaymentNeeded, gate.Kind)
}

func TestEvaluateCreatesInvoice(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	b, m := newPaymentBusiness(t, now)

	m.transferRepo.EXPECT().
		GetPendingPush(gomock.Any(), int32(10)).
		Return(transfers.PushPending{}, pgx.ErrNoRows)

	m.invoiceRepo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
			assert.Equal(t, int32(7), arg.ClientID)
			assert.Equal(t, "USD", arg.Currency)
			assert.Equal(t, int64(2500), arg.TotalCents)
			assert.Equal(t, now, arg.DateBilled.Time)
			assert.Equal(t, now.Add(7*24*time.Hour), arg.DateDue.Time)
			return invoices.Invoice{
				ID:         99,
				ClientID:   7,
				Currency:   "USD",
				TotalCents: 2500,
				Status:     "active",
				DateDue:    arg.DateDue,
			}, nil
		})

	m.invoiceRepo.EXPECT().
		CreateInvoiceLine(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg invoices.CreateInvoiceLineParams) (invoices.InvoiceLine, error) {
			assert.Equal(t, int32(99), arg.InvoiceID)
			assert.Equal(t, "VPS Push Service - Service #10", arg.Description)
			return invoices.InvoiceLine{ID: 1, InvoiceID: 99}, nil
		})

	m.transferRepo.EXPECT().
		UpsertPendingPush(gomock.Any(), transfers.UpsertPendingPushParams{
			ServiceID:      10,
			ClientID:       7,
			InvoiceID:      99,
			RecipientEmail: "new@example.com",
		}).
		Return(transfers.PushPending{ServiceID: 10, ClientID: 7, InvoiceID: 99}, nil)

	gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", nil)
	assert.NoError(t, err)
	assert.Equal(t, model.GateInvoiceCreated, gate.Kind)
	assert.Equal(t, int32(99), gate.InvoiceID)
	assert.Equal(t, int64(2500), gate.AmountCents)
	assert.False(t, gate.PreviousVoided)
}

func TestEvaluateConvertsCurrency(t *testing.T) {
	now := time.Now()
	b, m := newPaymentBusiness(t, now)

	client := model.Client{ID: 7, DefaultCurrency: "EUR"}

	m.transferRepo.EXPECT().
		GetPendingPush(gomock.Any(), int32(10)).
		Return(transfers.PushPending{}, pgx.ErrNoRows)

	m.currency.EXPECT().
		ConvertAmount(gomock.Any(), "USD", "EUR", int64(2500)).
		Return(&model.ConversionResult{ConvertedAmount: 2250}, nil)

	m.invoiceRepo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
			assert.Equal(t, "EUR", arg.Currency)
			assert.Equal(t, int64(2250), arg.TotalCents)
			return invoices.Invoice{ID: 100, ClientID: 7, Currency: "EUR", TotalCents: 2250, Status: "active"}, nil
		})
	m.invoiceRepo.EXPECT().
		CreateInvoiceLine(gomock.Any(), gomock.Any()).
		Return(invoices.InvoiceLine{}, nil)
	m.transferRepo.EXPECT().
		UpsertPendingPush(gomock.Any(), gomock.Any()).
		Return(transfers.PushPending{}, nil)

	gate, err := b.Evaluate(context.Background(), client, 10, "new@example.com", 2500, "USD", nil)
	assert.NoError(t, err)
	assert.Equal(t, model.GateInvoiceCreated, gate.Kind)
	assert.Equal(t, int64(2250), gate.AmountCents)
	assert.Equal(t, "EUR", gate.Currency)
}

func TestEvaluateReusesPendingInvoice(t *testing.T) {
	b, m := newPaymentBusiness(t, time.Now())

	// No invoice id supplied: the durable pending row supplies it, so
	// no second invoice is ever created.
	m.transferRepo.EXPECT().
		GetPendingPush(gomock.Any(), int32(10)).
		Return(transfers.PushPending{ServiceID: 10, ClientID: 7, InvoiceID: 55}, nil)

	m.invoiceRepo.EXPECT().
		GetInvoice(gomock.Any(), int32(55)).
		Return(dbInvoice(55, 7, 2500, 0, "active"), nil)

	gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", nil)
	assert.NoError(t, err)
	assert.Equal(t, model.GatePaymentPending, gate.Kind)
	assert.Equal(t, int32(55), gate.InvoiceID)
}

func TestEvaluateIgnoresForeignPendingRow(t *testing.T) {
	b, m := newPaymentBusiness(t, time.Now())

	// Pending row recorded by a different client must not leak into
	// this client's gate.
	m.transferRepo.EXPECT().
		GetPendingPush(gomock.Any(), int32(10)).
		Return(transfers.PushPending{ServiceID: 10, ClientID: 99, InvoiceID: 55}, nil)

	m.invoiceRepo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(dbInvoice(100, 7, 2500, 0, "active"), nil)
	m.invoiceRepo.EXPECT().
		CreateInvoiceLine(gomock.Any(), gomock.Any()).
		Return(invoices.InvoiceLine{}, nil)
	m.transferRepo.EXPECT().
		UpsertPendingPush(gomock.Any(), gomock.Any()).
		Return(transfers.PushPending{}, nil)

	gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", nil)
	assert.NoError(t, err)
	assert.Equal(t, model.GateInvoiceCreated, gate.Kind)
}

func TestEvaluateVoidedInvoiceIsReplaced(t *testing.T) {
	testCases := []string{"void", "voided", "canceled", "cancelled"}

	for _, status := range testCases {
		t.Run(status, func(t *testing.T) {
			b, m := newPaymentBusiness(t, time.Now())
			invoiceID := int32(55)

			m.invoiceRepo.EXPECT().
				GetInvoice(gomock.Any(), invoiceID).
				Return(dbInvoice(55, 7, 2500, 0, status), nil)

			m.invoiceRepo.EXPECT().
				CreateInvoice(gomock.Any(), gomock.Any()).
				Return(dbInvoice(101, 7, 2500, 0, "active"), nil)
			m.invoiceRepo.EXPECT().
				CreateInvoiceLine(gomock.Any(), gomock.Any()).
				Return(invoices.InvoiceLine{}, nil)
			m.transferRepo.EXPECT().
				UpsertPendingPush(gomock.Any(), gomock.Any()).
				Return(transfers.PushPending{}, nil)

			gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", &invoiceID)
			assert.NoError(t, err)
			assert.Equal(t, model.GateInvoiceCreated, gate.Kind)
			assert.True(t, gate.PreviousVoided)
			assert.Equal(t, int32(101), gate.InvoiceID)
		})
	}
}

func TestEvaluateForeignInvoiceDenied(t *testing.T) {
	b, m := newPaymentBusiness(t, time.Now())
	invoiceID := int32(55)

	m.invoiceRepo.EXPECT().
		GetInvoice(gomock.Any(), invoiceID).
		Return(dbInvoice(55, 99, 2500, 0, "active"), nil)

	_, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", &invoiceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invoice does not belong to this client")
}

func TestEvaluatePaidInvoiceConfirms(t *testing.T) {
	testCases := []struct {
		name    string
		invoice invoices.Invoice
	}{
		{name: "status_paid", invoice: dbInvoice(55, 7, 2500, 2500, "paid")},
		{name: "active_fully_covered", invoice: dbInvoice(55, 7, 2500, 2500, "active")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, m := newPaymentBusiness(t, time.Now())
			invoiceID := int32(55)

			m.invoiceRepo.EXPECT().
				GetInvoice(gomock.Any(), invoiceID).
				Return(tc.invoice, nil)

			gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", &invoiceID)
			assert.NoError(t, err)
			assert.Equal(t, model.GatePaymentConfirmed, gate.Kind)
		})
	}
}

func TestEvaluatePartialPaymentStillPending(t *testing.T) {
	b, m := newPaymentBusiness(t, time.Now())
	invoiceID := int32(55)

	m.invoiceRepo.EXPECT().
		GetInvoice(gomock.Any(), invoiceID).
		Return(dbInvoice(55, 7, 2500, 1000, "active"), nil)

	gate, err := b.Evaluate(context.Background(), testClient, 10, "new@example.com", 2500, "USD", &invoiceID)
	assert.NoError(t, err)
	assert.Equal(t, model.GatePaymentPending, gate.Kind)
}

func TestCheckPending(t *testing.T) {
	t.Run("no_pending_push", func(t *testing.T) {
		b, m := newPaymentBusiness(t, time.Now())

		m.transferRepo.EXPECT().
			GetPendingPush(gomock.Any(), int32(10)).
			Return(transfers.PushPending{}, pgx.ErrNoRows)

		_, err := b.CheckPending(context.Background(), 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no pending push for this service")
	})

	t.Run("pending_unpaid", func(t *testing.T) {
		b, m := newPaymentBusiness(t, time.Now())

		m.transferRepo.EXPECT().
			GetPendingPush(gomock.Any(), int32(10)).
			Return(transfers.PushPending{ServiceID: 10, ClientID: 7, InvoiceID: 55}, nil)
		m.invoiceRepo.EXPECT().
			GetInvoice(gomock.Any(), int32(55)).
			Return(dbInvoice(55, 7, 2500, 0, "active"), nil)

		gate, err := b.CheckPending(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, model.GatePaymentPending, gate.Kind)
	})

	t.Run("pending_settled", func(t *testing.T) {
		b, m := newPaymentBusiness(t, time.Now())

		m.transferRepo.EXPECT().
			GetPendingPush(gomock.Any(), int32(10)).
			Return(transfers.PushPending{ServiceID: 10, ClientID: 7, InvoiceID: 55}, nil)
		m.invoiceRepo.EXPECT().
			GetInvoice(gomock.Any(), int32(55)).
			Return(dbInvoice(55, 7, 2500, 2500, "paid"), nil)

		gate, err := b.CheckPending(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, model.GatePaymentConfirmed, gate.Kind)
	})
}
