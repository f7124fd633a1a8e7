package identity

import (
	"context"
	"fmt"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
	"encore.app/transfer/virtfusion"
)

// Resolve returns the control-plane user id for the recipient. The
// ext-relation lookup is the idempotent fast path; a 404 triggers user
// creation, and a create conflict (the email exists under some other
// ext-relation id) falls back to a linear scan of all ledger clients.
// The scan is O(clients) and acceptable: conflicts are rare and
// guessing an identity is not an option.
func (b *business) Resolve(ctx context.Context, api virtfusion.API, recipient model.Client) (int32, error) {
	user, err := api.GetUserByExtRelation(ctx, recipient.ID)
	if err == nil {
		return user.ID, nil
	}
	if !virtfusion.IsNotFound(err) {
		return 0, &errs.Error{
			Code:    errs.Unavailable,
			Message: "failed to query remote user: " + virtfusion.RemoteMessage(err),
		}
	}

	created, err := api.CreateUser(ctx, virtfusion.CreateUserParams{
		Name:          recipient.FullName(),
		Email:         recipient.Email,
		ExtRelationID: recipient.ID,
		SendMail:      false,
	})
	if err == nil {
		return created.ID, nil
	}
	if !virtfusion.IsConflict(err) {
		return 0, &errs.Error{
			Code:    errs.Unavailable,
			Message: "failed to create remote user: " + virtfusion.RemoteMessage(err),
		}
	}

	// The email already exists remotely but under a different
	// ext-relation id. Scan instead of guessing.
	rlog.Info("remote user create conflict, scanning by email", "client_id", recipient.ID, "email", recipient.Email)
	return b.scanByEmail(ctx, api, recipient.Email)
}

// scanByEmail walks all ledger clients in ascending id order and
// returns the first remote user whose email matches, case-insensitively.
func (b *business) scanByEmail(ctx context.Context, api virtfusion.API, email string) (int32, error) {
	ids, err := b.clientRepo.ListClientIDs(ctx)
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to list clients for identity scan"}
	}

	for _, id := range ids {
		user, err := api.GetUserByExtRelation(ctx, id)
		if err != nil {
			// Gaps are expected: not every client exists remotely.
			continue
		}
		if strings.EqualFold(user.Email, email) {
			return user.ID, nil
		}
	}

	return 0, &errs.Error{
		Code:    errs.Unavailable,
		Message: fmt.Sprintf("user %s already exists in the control plane but could not be correlated; contact an administrator", email),
	}
}
