package transfer

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/transfer/model"
)

type EligibilityResponse struct {
	Eligibility model.Eligibility `json:"eligibility"`
}

// GetEligibility answers whether the service can be pushed right now
// and what it would cost, without creating an invoice or touching the
// control plane.
//
//encore:api public path=/v1/services/:id/push/eligibility method=GET
func (s *Service) GetEligibility(ctx context.Context, id int32) (*EligibilityResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid service ID"}
	}

	eligibility, err := s.business.Eligibility(ctx, id)
	if err != nil {
		rlog.Error("failed to evaluate push eligibility", "error", err, "service_id", id)
		return nil, err
	}

	return &EligibilityResponse{
		Eligibility: *eligibility,
	}, nil
}
