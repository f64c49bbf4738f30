package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/infrastructure/persistence/mappers"
	"claimdesk/internal/infrastructure/persistence/models"
	"claimdesk/internal/shared/db"
	apperrors "claimdesk/internal/shared/errors"
)

type SubStatusRepository struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
}

func NewSubStatusRepository(database *gorm.DB) *SubStatusRepository {
	return &SubStatusRepository{
		db:     database,
		mapper: mappers.NewStatusMapper(),
	}
}

func (r *SubStatusRepository) Save(ctx context.Context, ss *status.SubStatus) error {
	model := r.mapper.SubStatusToModel(ss)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save sub-status: %w", err)
	}

	return ss.SetID(model.ID)
}

func (r *SubStatusRepository) Update(ctx context.Context, ss *status.SubStatus) error {
	model := r.mapper.SubStatusToModel(ss)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SubStatusModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"display_order": model.DisplayOrder,
			"description":   model.Description,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update sub-status: %w", result.Error)
	}

	return nil
}

func (r *SubStatusRepository) Delete(ctx context.Context, subStatusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.SubStatusModel{}, subStatusID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sub-status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("sub-status %d not found", subStatusID))
	}

	return nil
}

func (r *SubStatusRepository) GetByID(ctx context.Context, subStatusID uint) (*status.SubStatus, error) {
	var model models.SubStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, subStatusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sub-status %d not found", subStatusID))
		}
		return nil, fmt.Errorf("failed to get sub-status: %w", err)
	}

	return r.mapper.SubStatusToDomain(&model)
}

func (r *SubStatusRepository) GetByName(ctx context.Context, statusID uint, name string) (*status.SubStatus, error) {
	var model models.SubStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status_id = ? AND LOWER(name) = LOWER(?)", statusID, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sub-status %q not found", name))
		}
		return nil, fmt.Errorf("failed to get sub-status by name: %w", err)
	}

	return r.mapper.SubStatusToDomain(&model)
}

func (r *SubStatusRepository) GetByIDs(ctx context.Context, subStatusIDs []uint) (map[uint]*status.SubStatus, error) {
	result := make(map[uint]*status.SubStatus, len(subStatusIDs))
	if len(subStatusIDs) == 0 {
		return result, nil
	}

	var subStatusModels []models.SubStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", subStatusIDs).Find(&subStatusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get sub-statuses by ids: %w", err)
	}

	for i := range subStatusModels {
		ss, err := r.mapper.SubStatusToDomain(&subStatusModels[i])
		if err != nil {
			return nil, err
		}
		result[ss.ID()] = ss
	}
	return result, nil
}

func (r *SubStatusRepository) ListByStatus(ctx context.Context, statusID uint) ([]*status.SubStatus, error) {
	var subStatusModels []models.SubStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status_id = ?", statusID).
		Order("display_order ASC, id ASC").
		Find(&subStatusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sub-statuses: %w", err)
	}

	return r.toDomainSlice(subStatusModels)
}

func (r *SubStatusRepository) List(ctx context.Context) ([]*status.SubStatus, error) {
	var subStatusModels []models.SubStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("status_id ASC, display_order ASC, id ASC").Find(&subStatusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sub-statuses: %w", err)
	}

	return r.toDomainSlice(subStatusModels)
}

func (r *SubStatusRepository) DeleteByStatus(ctx context.Context, statusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("status_id = ?", statusID).Delete(&models.SubStatusModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sub-statuses: %w", err)
	}
	return nil
}

func (r *SubStatusRepository) toDomainSlice(subStatusModels []models.SubStatusModel) ([]*status.SubStatus, error) {
	subStatuses := make([]*status.SubStatus, len(subStatusModels))
	for i := range subStatusModels {
		ss, err := r.mapper.SubStatusToDomain(&subStatusModels[i])
		if err != nil {
			return nil, err
		}
		subStatuses[i] = ss
	}
	return subStatuses, nil
}
