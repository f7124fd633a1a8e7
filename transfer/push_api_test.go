package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/transfer/mocks/business/push_business"
	"encore.app/transfer/model"
	"encore.app/transfer/workflow"
)

func TestPushService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transferID := int64(501)
	invoiceID := int32(88)
	dueAt := time.Now().Add(72 * time.Hour)

	testCases := []struct {
		name              string
		serviceID         int32
		request           *PushRequest
		businessResult    *model.PushResult
		businessError     error
		workflowError     error
		expectWorkflow    bool
		expectedError     string
		expectedErrorCode errs.ErrCode
	}{
		{
			name:      "successful_push",
			serviceID: 101,
			request:   &PushRequest{RecipientEmail: "recipient@example.com"},
			businessResult: &model.PushResult{
				Success:        true,
				Message:        "VPS successfully transferred to recipient@example.com",
				RecipientEmail: "recipient@example.com",
				TransferID:     &transferID,
			},
		},
		{
			name:      "payment_required_starts_workflow",
			serviceID: 101,
			request:   &PushRequest{RecipientEmail: "recipient@example.com"},
			businessResult: &model.PushResult{
				PaymentRequired: true,
				InvoiceID:       &invoiceID,
				InvoiceDueAt:    &dueAt,
				RecipientEmail:  "recipient@example.com",
				PriceCents:      500,
				PriceCurrency:   "USD",
			},
			expectWorkflow: true,
		},
		{
			name:      "payment_required_workflow_start_failure_is_not_fatal",
			serviceID: 101,
			request:   &PushRequest{RecipientEmail: "recipient@example.com"},
			businessResult: &model.PushResult{
				PaymentRequired: true,
				InvoiceID:       &invoiceID,
				RecipientEmail:  "recipient@example.com",
			},
			workflowError:  errors.New("temporal unreachable"),
			expectWorkflow: true,
		},
		{
			name:          "business_error_propagates",
			serviceID:     101,
			request:       &PushRequest{RecipientEmail: "recipient@example.com"},
			businessError: &errs.Error{Code: errs.PermissionDenied, Message: "you do not have permission to use this feature"},
			expectedError: "you do not have permission to use this feature",
		},
		{
			name:              "invalid_service_id",
			serviceID:         0,
			request:           &PushRequest{RecipientEmail: "recipient@example.com"},
			expectedError:     "invalid service ID",
			expectedErrorCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness := push_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{business: mockBusiness, temporal: mockTemporal}

			if tc.serviceID > 0 {
				mockBusiness.EXPECT().
					Push(gomock.Any(), tc.serviceID, tc.request.RecipientEmail, tc.request.InvoiceID, "api").
					Return(tc.businessResult, tc.businessError).
					Times(1)
			}
			if tc.expectWorkflow {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
						return opts.ID == "push-pending-101" && opts.TaskQueue == taskQueue
					}),
					mock.Anything,
					mock.MatchedBy(func(params workflow.PendingPaymentWorkflowParams) bool {
						return params.ServiceID == 101 && params.InvoiceID == invoiceID
					}),
				).Return(nil, tc.workflowError)
			}

			response, err := service.PushService(context.Background(), tc.serviceID, tc.request)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, response)
			assert.Equal(t, *tc.businessResult, response.Result)
		})
	}
}

func TestPushServiceUsesForwardedOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := push_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		Push(gomock.Any(), int32(101), "recipient@example.com", gomock.Nil(), "203.0.113.9").
		Return(&model.PushResult{Success: true}, nil)

	_, err := service.PushService(context.Background(), 101, &PushRequest{
		Origin:         "203.0.113.9",
		RecipientEmail: "recipient@example.com",
	})
	require.NoError(t, err)
}

func TestPushRequestValidation(t *testing.T) {
	negative := int32(-1)
	valid := int32(5)

	testCases := []struct {
		name          string
		request       *PushRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &PushRequest{RecipientEmail: "recipient@example.com"},
		},
		{
			name:    "valid_with_invoice",
			request: &PushRequest{RecipientEmail: "recipient@example.com", InvoiceID: &valid},
		},
		{
			name:          "missing_email",
			request:       &PushRequest{},
			expectedError: "RecipientEmail",
		},
		{
			name:          "malformed_email",
			request:       &PushRequest{RecipientEmail: "not-an-email"},
			expectedError: "RecipientEmail",
		},
		{
			name:          "non_positive_invoice",
			request:       &PushRequest{RecipientEmail: "recipient@example.com", InvoiceID: &negative},
			expectedError: "invoice_id must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
