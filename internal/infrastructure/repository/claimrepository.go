package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"claimdesk/internal/domain/claim"
	"claimdesk/internal/infrastructure/persistence/mappers"
	"claimdesk/internal/infrastructure/persistence/models"
	"claimdesk/internal/shared/db"
	apperrors "claimdesk/internal/shared/errors"
)

// allowedClaimOrderByFields is the ORDER BY whitelist. Anything else falls
// back to the default sort.
var allowedClaimOrderByFields = map[string]bool{
	"id":          true,
	"subject":     true,
	"client_name": true,
	"status_id":   true,
	"priority":    true,
	"assignee_id": true,
	"resolved_at": true,
	"created_at":  true,
	"updated_at":  true,
}

type ClaimRepository struct {
	db     *gorm.DB
	mapper mappers.ClaimMapper
}

func NewClaimRepository(database *gorm.DB) *ClaimRepository {
	return &ClaimRepository{
		db:     database,
		mapper: mappers.NewClaimMapper(),
	}
}

func (r *ClaimRepository) Save(ctx context.Context, c *claim.Claim) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}

	return c.SetID(model.ID)
}

// Update replaces the whole aggregate row, guarded by the version the
// aggregate was loaded with. Zero affected rows with a still-existing row
// means a concurrent writer won; the caller gets a conflict.
func (r *ClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClaimModel{}).
		Where("id = ? AND version = ?", model.ID, c.Version()).
		Updates(map[string]interface{}{
			"subject":            model.Subject,
			"client_name":        model.ClientName,
			"contact_info":       model.ContactInfo,
			"client_email":       model.ClientEmail,
			"client_phone":       model.ClientPhone,
			"description":        model.Description,
			"status_id":          model.StatusID,
			"sub_status_id":      model.SubStatusID,
			"priority":           model.Priority,
			"category":           model.Category,
			"assignee_id":        model.AssigneeID,
			"assignee_snapshot":  model.AssigneeSnapshot,
			"resolution_summary": model.ResolutionSummary,
			"resolved_at":        model.ResolvedAt,
			"comments":           model.Comments,
			"attachments":        model.Attachments,
			"audit_trail":        model.AuditTrail,
			"updated_at":         model.UpdatedAt,
			"version":            gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.ClaimModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify claim update: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", model.ID))
		}
		return apperrors.NewConflictError(
			fmt.Sprintf("claim %d was modified concurrently", model.ID))
	}

	c.AdvanceVersion()
	return nil
}

func (r *ClaimRepository) Delete(ctx context.Context, claimID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ClaimModel{}, claimID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", claimID))
	}

	return nil
}

func (r *ClaimRepository) GetByID(ctx context.Context, claimID uint) (*claim.Claim, error) {
	var model models.ClaimModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, claimID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", claimID))
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClaimRepository) List(ctx context.Context, filter claim.ClaimFilter) ([]*claim.Claim, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ClaimModel{})

	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.SubStatusID != nil {
		query = query.Where("sub_status_id = ?", *filter.SubStatusID)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned != nil && *filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("subject LIKE ? OR client_name LIKE ? OR description LIKE ?", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom.UnixMilli())
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", filter.CreatedTo.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	query = query.Order(claimOrderClause(filter.SortBy, filter.SortOrder))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var claimModels []models.ClaimModel
	if err := query.Find(&claimModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	claims := make([]*claim.Claim, len(claimModels))
	for i := range claimModels {
		c, err := r.mapper.ToDomain(&claimModels[i])
		if err != nil {
			return nil, 0, err
		}
		claims[i] = c
	}

	return claims, total, nil
}

func (r *ClaimRepository) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ClaimModel{}).Where("status_id = ?", statusID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count claims by status: %w", err)
	}
	return count, nil
}

func (r *ClaimRepository) CountBySubStatusID(ctx context.Context, subStatusID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ClaimModel{}).Where("sub_status_id = ?", subStatusID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count claims by sub-status: %w", err)
	}
	return count, nil
}

// claimOrderClause builds the ORDER BY for claim listings. Sorting by
// created_at uses the compound resolved/created order so resolved claims
// group by resolution recency while open ones follow by creation date
// (NULL resolved_at sorts last under DESC on both MySQL and SQLite).
func claimOrderClause(sortBy, sortOrder string) string {
	field := strings.ToLower(sortBy)
	if field == "" || !allowedClaimOrderByFields[field] {
		field = "created_at"
	}

	order := strings.ToUpper(sortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	if field == "created_at" {
		return fmt.Sprintf("resolved_at %s, created_at %s", order, order)
	}
	return field + " " + order
}
