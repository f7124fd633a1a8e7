package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"

	"encore.app/transfer/workflow"
)

// runSync makes the async signal delivery synchronous for assertions.
func runSync(t *testing.T) {
	t.Helper()
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })
}

func TestInvoicePaidSignalsWorkflow(t *testing.T) {
	runSync(t)

	mockTemporal := mocks.NewClient(t)
	service := &Service{temporal: mockTemporal}

	mockTemporal.On("SignalWorkflow",
		mock.Anything,
		"push-pending-101",
		"",
		workflow.PaymentCompletedSignalName,
		workflow.PaymentCompletedSignal{InvoiceID: 88},
	).Return(nil)

	resp, err := service.InvoicePaid(context.Background(), &InvoicePaidRequest{ServiceID: 101, InvoiceID: 88})
	require.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	mockTemporal.AssertExpectations(t)
}

func TestInvoicePaidNoPendingWorkflow(t *testing.T) {
	runSync(t)

	mockTemporal := mocks.NewClient(t)
	service := &Service{temporal: mockTemporal}

	// A payment with nothing pending is acknowledged and ignored.
	mockTemporal.On("SignalWorkflow", mock.Anything, "push-pending-102", "", workflow.PaymentCompletedSignalName, mock.Anything).
		Return(serviceerror.NewNotFound("workflow not found"))

	resp, err := service.InvoicePaid(context.Background(), &InvoicePaidRequest{ServiceID: 102, InvoiceID: 89})
	require.NoError(t, err)
	assert.True(t, resp.Acknowledged)
}

func TestInvoicePaidSignalFailureStillAcknowledges(t *testing.T) {
	runSync(t)

	mockTemporal := mocks.NewClient(t)
	service := &Service{temporal: mockTemporal}

	mockTemporal.On("SignalWorkflow", mock.Anything, "push-pending-103", "", workflow.PaymentCompletedSignalName, mock.Anything).
		Return(errors.New("temporal unreachable"))

	// The webhook never blocks or fails on signal delivery; the poll
	// loop inside the workflow is the fallback.
	resp, err := service.InvoicePaid(context.Background(), &InvoicePaidRequest{ServiceID: 103, InvoiceID: 90})
	require.NoError(t, err)
	assert.True(t, resp.Acknowledged)
}

func TestInvoicePaidRequestValidation(t *testing.T) {
	testCases := []struct {
		name      string
		request   *InvoicePaidRequest
		expectErr bool
	}{
		{
			name:    "valid",
			request: &InvoicePaidRequest{ServiceID: 101, InvoiceID: 88},
		},
		{
			name:      "missing_service",
			request:   &InvoicePaidRequest{InvoiceID: 88},
			expectErr: true,
		},
		{
			name:      "missing_invoice",
			request:   &InvoicePaidRequest{ServiceID: 101},
			expectErr: true,
		},
		{
			name:      "negative_ids",
			request:   &InvoicePaidRequest{ServiceID: -1, InvoiceID: -2},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
