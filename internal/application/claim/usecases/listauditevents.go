package usecases

import (
	"context"
	"fmt"

	claimdto "claimdesk/internal/application/claim/dto"
	"claimdesk/internal/domain/claim"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type ListAuditEventsQuery struct {
	ClaimID uint
	// Limit caps the number of events returned; zero means all.
	Limit int
}

// ListAuditEventsUseCase returns a claim's audit trail newest first.
type ListAuditEventsUseCase struct {
	claimRepo claim.ClaimRepository
	logger    logger.Interface
}

func NewListAuditEventsUseCase(
	claimRepo claim.ClaimRepository,
	logger logger.Interface,
) *ListAuditEventsUseCase {
	return &ListAuditEventsUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *ListAuditEventsUseCase) Execute(ctx context.Context, query ListAuditEventsQuery) ([]claimdto.AuditEventDTO, error) {
	if query.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, query.ClaimID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("claim %d not found", query.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", query.ClaimID, "error", err)
		return nil, errors.NewInternalError("failed to get claim")
	}

	trail := c.AuditTrail()
	result := make([]claimdto.AuditEventDTO, 0, len(trail))
	for i := len(trail) - 1; i >= 0; i-- {
		result = append(result, claimdto.ToAuditEventDTO(trail[i]))
		if query.Limit > 0 && len(result) >= query.Limit {
			break
		}
	}
	return result, nil
}
