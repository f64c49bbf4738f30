package usecases

import (
	"context"
	"strings"

	claimdto "claimdesk/internal/application/claim/dto"
	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/biztime"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/logger"
)

type ListClaimsQuery struct {
	// StatusRef filters by status ID or name.
	StatusRef    string
	SubStatusID  *uint
	Priority     string
	AssigneeID   *uint
	Unassigned   *bool
	Search       string
	// CreatedFrom and CreatedTo are YYYY-MM-DD business dates.
	CreatedFrom string
	CreatedTo   string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

// ListClaimsUseCase builds the claims list read model. Status, sub-status
// and assignee data are batch-loaded once per page rather than per row.
type ListClaimsUseCase struct {
	claimRepo     claim.ClaimRepository
	statusRepo    status.StatusRepository
	subStatusRepo status.SubStatusRepository
	users         directory.UserDirectory
	refResolver   *services.StatusRefResolver
	logger        logger.Interface
}

func NewListClaimsUseCase(
	claimRepo claim.ClaimRepository,
	statusRepo status.StatusRepository,
	subStatusRepo status.SubStatusRepository,
	users directory.UserDirectory,
	refResolver *services.StatusRefResolver,
	logger logger.Interface,
) *ListClaimsUseCase {
	return &ListClaimsUseCase{
		claimRepo:     claimRepo,
		statusRepo:    statusRepo,
		subStatusRepo: subStatusRepo,
		users:         users,
		refResolver:   refResolver,
		logger:        logger,
	}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, query ListClaimsQuery) ([]claimdto.ClaimDTO, int64, error) {
	filter, err := uc.buildFilter(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	claims, total, err := uc.claimRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list claims", "error", err)
		return nil, 0, errors.NewInternalError("failed to list claims")
	}

	statuses, subStatuses := uc.batchLoadCatalog(ctx, claims)
	uc.backfillSnapshots(ctx, claims)

	result := make([]claimdto.ClaimDTO, 0, len(claims))
	for _, c := range claims {
		result = append(result, *claimdto.ToClaimDTO(c, statuses, subStatuses))
	}
	return result, total, nil
}

func (uc *ListClaimsUseCase) buildFilter(ctx context.Context, query ListClaimsQuery) (claim.ClaimFilter, error) {
	filter := claim.ClaimFilter{
		SubStatusID: query.SubStatusID,
		AssigneeID:  query.AssigneeID,
		Unassigned:  query.Unassigned,
		Search:      strings.TrimSpace(query.Search),
		Page:        query.Page,
		PageSize:    query.PageSize,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
	}

	if strings.TrimSpace(query.StatusRef) != "" {
		s, err := uc.refResolver.ResolveStatus(ctx, query.StatusRef)
		if err != nil {
			return claim.ClaimFilter{}, err
		}
		statusID := s.ID()
		filter.StatusID = &statusID
	}

	if query.Priority != "" {
		p, err := vo.NewPriority(query.Priority)
		if err != nil {
			return claim.ClaimFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &p
	}

	if query.CreatedFrom != "" {
		from, err := biztime.ParseDateInBizTimezone(query.CreatedFrom)
		if err != nil {
			return claim.ClaimFilter{}, errors.NewValidationError(err.Error())
		}
		filter.CreatedFrom = &from
	}
	if query.CreatedTo != "" {
		to, err := biztime.ParseDateInBizTimezone(query.CreatedTo)
		if err != nil {
			return claim.ClaimFilter{}, errors.NewValidationError(err.Error())
		}
		end := biztime.EndOfDayUTC(to)
		filter.CreatedTo = &end
	}

	return filter, nil
}

func (uc *ListClaimsUseCase) batchLoadCatalog(ctx context.Context, claims []*claim.Claim) (map[uint]*status.Status, map[uint]*status.SubStatus) {
	statusIDs := make([]uint, 0, len(claims))
	subStatusIDs := make([]uint, 0, len(claims))
	seenStatus := make(map[uint]bool)
	seenSub := make(map[uint]bool)
	for _, c := range claims {
		if !seenStatus[c.StatusID()] {
			seenStatus[c.StatusID()] = true
			statusIDs = append(statusIDs, c.StatusID())
		}
		if subID := c.SubStatusID(); subID != nil && !seenSub[*subID] {
			seenSub[*subID] = true
			subStatusIDs = append(subStatusIDs, *subID)
		}
	}

	statuses := map[uint]*status.Status{}
	if len(statusIDs) > 0 {
		m, err := uc.statusRepo.GetByIDs(ctx, statusIDs)
		if err != nil {
			uc.logger.Warnw("failed to batch load statuses", "error", err)
		} else {
			statuses = m
		}
	}
	subStatuses := map[uint]*status.SubStatus{}
	if len(subStatusIDs) > 0 {
		m, err := uc.subStatusRepo.GetByIDs(ctx, subStatusIDs)
		if err != nil {
			uc.logger.Warnw("failed to batch load sub-statuses", "error", err)
		} else {
			subStatuses = m
		}
	}
	return statuses, subStatuses
}

// backfillSnapshots fills missing assignee snapshots from one batched
// directory read. Rows written before snapshots existed stay readable;
// directory errors only degrade the listing.
func (uc *ListClaimsUseCase) backfillSnapshots(ctx context.Context, claims []*claim.Claim) {
	var missing []uint
	seen := make(map[uint]bool)
	for _, c := range claims {
		if id := c.AssigneeID(); id != nil && c.AssigneeSnapshot() == nil && !seen[*id] {
			seen[*id] = true
			missing = append(missing, *id)
		}
	}
	if len(missing) == 0 {
		return
	}

	agents, err := uc.users.BatchGetByIDs(ctx, missing)
	if err != nil {
		uc.logger.Warnw("failed to batch load assignees", "error", err)
		return
	}
	for _, c := range claims {
		id := c.AssigneeID()
		if id == nil || c.AssigneeSnapshot() != nil {
			continue
		}
		agent, ok := agents[*id]
		if !ok {
			continue
		}
		snapshot, err := services.Snapshot(agent)
		if err != nil {
			continue
		}
		if err := c.RefreshAssigneeSnapshot(snapshot); err != nil {
			uc.logger.Warnw("failed to backfill snapshot", "claim_id", c.ID(), "error", err)
		}
	}
}
