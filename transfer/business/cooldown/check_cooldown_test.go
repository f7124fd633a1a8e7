package cooldown

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/transfer/mocks/repository/transfer_repo"
	"encore.app/transfer/repository/transfers"
)

func TestCheck(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	lastTransferAt := func(at time.Time) transfers.PushTransfer {
		return transfers.PushTransfer{
			ID:            1,
			ServiceID:     10,
			Status:        "completed",
			TransferredAt: pgtype.Timestamptz{Time: at, Valid: true},
		}
	}

	testCases := []struct {
		name          string
		cooldownDays  int32
		mockTransfer  *transfers.PushTransfer
		mockError     error
		expectAllowed bool
		expectDays    int32
	}{
		{
			name:          "zero_cooldown_always_allows",
			cooldownDays:  0,
			expectAllowed: true,
		},
		{
			name:          "negative_cooldown_always_allows",
			cooldownDays:  -1,
			expectAllowed: true,
		},
		{
			name:          "no_prior_transfer_allows",
			cooldownDays:  30,
			mockError:     pgx.ErrNoRows,
			expectAllowed: true,
		},
		{
			name:         "inside_window_denies_with_remaining_days",
			cooldownDays: 30,
			mockTransfer: func() *transfers.PushTransfer {
				tr := lastTransferAt(now.Add(-10 * 24 * time.Hour))
				return &tr
			}(),
			expectAllowed: false,
			expectDays:    20,
		},
		{
			name:         "partial_day_rounds_up",
			cooldownDays: 30,
			mockTransfer: func() *transfers.PushTransfer {
				tr := lastTransferAt(now.Add(-29*24*time.Hour - 23*time.Hour))
				return &tr
			}(),
			expectAllowed: false,
			expectDays:    1,
		},
		{
			name:         "window_elapsed_allows",
			cooldownDays: 30,
			mockTransfer: func() *transfers.PushTransfer {
				tr := lastTransferAt(now.Add(-31 * 24 * time.Hour))
				return &tr
			}(),
			expectAllowed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := transfer_repo.NewMockQuerier(ctrl)
			b := &business{
				transferRepo: mockRepo,
				now:          func() time.Time { return now },
			}

			if tc.cooldownDays > 0 {
				if tc.mockError != nil {
					mockRepo.EXPECT().
						GetLastCompletedTransfer(gomock.Any(), int32(10)).
						Return(transfers.PushTransfer{}, tc.mockError)
				} else {
					mockRepo.EXPECT().
						GetLastCompletedTransfer(gomock.Any(), int32(10)).
						Return(*tc.mockTransfer, nil)
				}
			}

			result, err := b.Check(context.Background(), 10, tc.cooldownDays)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectAllowed, result.Allowed)
			assert.Equal(t, tc.expectDays, result.RemainingDays)
		})
	}
}

func TestCheckRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := transfer_repo.NewMockQuerier(ctrl)
	b := &business{
		transferRepo: mockRepo,
		now:          time.Now,
	}

	mockRepo.EXPECT().
		GetLastCompletedTransfer(gomock.Any(), int32(10)).
		Return(transfers.PushTransfer{}, assert.AnError)

	_, err := b.Check(context.Background(), 10, 30)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up transfer history")
}
