package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/transfer/mocks/business/push_business"
	"encore.app/transfer/model"
)

func TestGetTransferAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := push_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	now := time.Now()
	mockBusiness.EXPECT().GetTransfer(gomock.Any(), int64(501)).Return(&model.Transfer{
		ID:            501,
		ServiceID:     101,
		FromEmail:     "owner@example.com",
		ToEmail:       "recipient@example.com",
		Status:        model.TransferStatusCompleted,
		TransferredAt: now,
	}, nil)

	resp, err := service.GetTransfer(context.Background(), 501)
	require.NoError(t, err)
	assert.Equal(t, int64(501), resp.Transfer.ID)
	assert.Equal(t, model.TransferStatusCompleted, resp.Transfer.Status)
}

func TestGetTransferAPIInvalidID(t *testing.T) {
	service := &Service{}

	_, err := service.GetTransfer(context.Background(), 0)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidArgument, e.Code)
}

func TestListTransfersAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := push_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().ListTransfersByService(gomock.Any(), int32(101)).Return([]*model.Transfer{
		{ID: 502, ServiceID: 101},
		{ID: 501, ServiceID: 101},
	}, nil)

	resp, err := service.ListTransfers(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, resp.Transfers, 2)
	assert.Equal(t, int64(502), resp.Transfers[0].ID)
}

func TestCheckPaymentAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := push_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().CheckPayment(gomock.Any(), int32(101)).Return(&model.GateResult{
		Kind:      model.GatePaymentPending,
		InvoiceID: 88,
	}, nil)

	resp, err := service.CheckPayment(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, model.GatePaymentPending, resp.Gate.Kind)
	assert.Equal(t, int32(88), resp.Gate.InvoiceID)
}

func TestGetEligibilityAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := push_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().Eligibility(gomock.Any(), int32(101)).Return(&model.Eligibility{
		Allowed:       true,
		PriceCents:    500,
		PriceCurrency: "USD",
		CooldownDays:  30,
	}, nil)

	resp, err := service.GetEligibility(context.Background(), 101)
	require.NoError(t, err)
	assert.True(t, resp.Eligibility.Allowed)
	assert.Equal(t, int64(500), resp.Eligibility.PriceCents)
}
