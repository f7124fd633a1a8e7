package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/transfer/mocks/repository/client_repo"
	"encore.app/transfer/mocks/virtfusion_api"
	"encore.app/transfer/model"
	"encore.app/transfer/virtfusion"
)

var recipient = model.Client{
	ID:        42,
	Email:     "new.owner@example.com",
	FirstName: "New",
	LastName:  "Owner",
}

func newIdentityBusiness(t *testing.T) (*business, *client_repo.MockQuerier, *virtfusion_api.MockAPI) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClients := client_repo.NewMockQuerier(ctrl)
	mockAPI := virtfusion_api.NewMockAPI(ctrl)
	return &business{clientRepo: mockClients}, mockClients, mockAPI
}

func notFoundErr() error {
	return virtfusion.NewAPIError(404, []byte(`{"message":"user not found"}`))
}

func conflictErr() error {
	return virtfusion.NewAPIError(409, []byte(`{"message":"email already exists"}`))
}

func TestResolveFastPath(t *testing.T) {
	b, _, api := newIdentityBusiness(t)

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(42)).
		Return(&virtfusion.User{ID: 900, Email: recipient.Email, ExtRelationID: 42}, nil)

	id, err := b.Resolve(context.Background(), api, recipient)
	assert.NoError(t, err)
	assert.Equal(t, int32(900), id)
}

func TestResolveCreatesMissingUser(t *testing.T) {
	b, _, api := newIdentityBusiness(t)

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(42)).
		Return(nil, notFoundErr())

	api.EXPECT().
		CreateUser(gomock.Any(), virtfusion.CreateUserParams{
			Name:          "New Owner",
			Email:         recipient.Email,
			ExtRelationID: 42,
			SendMail:      false,
		}).
		Return(&virtfusion.User{ID: 901}, nil)

	id, err := b.Resolve(context.Background(), api, recipient)
	assert.NoError(t, err)
	assert.Equal(t, int32(901), id)
}

func TestResolveBlankNameFallback(t *testing.T) {
	b, _, api := newIdentityBusiness(t)

	blank := model.Client{ID: 43, Email: "blank@example.com"}

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(43)).
		Return(nil, notFoundErr())
	api.EXPECT().
		CreateUser(gomock.Any(), virtfusion.CreateUserParams{
			Name:          "User Account",
			Email:         blank.Email,
			ExtRelationID: 43,
			SendMail:      false,
		}).
		Return(&virtfusion.User{ID: 902}, nil)

	id, err := b.Resolve(context.Background(), api, blank)
	assert.NoError(t, err)
	assert.Equal(t, int32(902), id)
}

func TestResolveLookupFailure(t *testing.T) {
	b, _, api := newIdentityBusiness(t)

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(42)).
		Return(nil, virtfusion.NewAPIError(500, []byte(`{"message":"internal error"}`)))

	_, err := b.Resolve(context.Background(), api, recipient)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query remote user")
}

func TestResolveCreateFailure(t *testing.T) {
	b, _, api := newIdentityBusiness(t)

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(42)).
		Return(nil, notFoundErr())
	api.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, virtfusion.NewAPIError(500, []byte(`{"message":"boom"}`)))

	_, err := b.Resolve(context.Background(), api, recipient)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create remote user")
}

func TestResolveConflictScan(t *testing.T) {
	b, clients, api := newIdentityBusiness(t)

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(42)).
		Return(nil, notFoundErr())
	api.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, conflictErr())

	// The scan walks clients in ascending id order, skips gaps, and
	// matches email case-insensitively.
	clients.EXPECT().
		ListClientIDs(gomock.Any()).
		Return([]int32{1, 2, 3}, nil)

	gomock.InOrder(
		api.EXPECT().
			GetUserByExtRelation(gomock.Any(), int32(1)).
			Return(&virtfusion.User{ID: 101, Email: "other@example.com"}, nil),
		api.EXPECT().
			GetUserByExtRelation(gomock.Any(), int32(2)).
			Return(nil, notFoundErr()),
		api.EXPECT().
			GetUserByExtRelation(gomock.Any(), int32(3)).
			Return(&virtfusion.User{ID: 103, Email: "NEW.OWNER@EXAMPLE.COM"}, nil),
	)

	id, err := b.Resolve(context.Background(), api, recipient)
	assert.NoError(t, err)
	assert.Equal(t, int32(103), id)
}

func TestResolveConflictScanExhausted(t *testing.T) {
	b, clients, api := newIdentityBusiness(t)

	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(42)).
		Return(nil, notFoundErr())
	api.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, conflictErr())

	clients.EXPECT().
		ListClientIDs(gomock.Any()).
		Return([]int32{1}, nil)
	api.EXPECT().
		GetUserByExtRelation(gomock.Any(), int32(1)).
		Return(&virtfusion.User{ID: 101, Email: "other@example.com"}, nil)

	_, err := b.Resolve(context.Background(), api, recipient)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not be correlated")
}
