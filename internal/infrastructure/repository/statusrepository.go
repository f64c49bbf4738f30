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

type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
}

func NewStatusRepository(database *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:     database,
		mapper: mappers.NewStatusMapper(),
	}
}

func (r *StatusRepository) Save(ctx context.Context, s *status.Status) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StatusRepository) Update(ctx context.Context, s *status.Status) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StatusModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"color":         model.Color,
			"display_order": model.DisplayOrder,
			"description":   model.Description,
			"area":          model.Area,
			"permissions":   model.Permissions,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, statusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.StatusModel{}, statusID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("status %d not found", statusID))
	}

	return nil
}

func (r *StatusRepository) GetByID(ctx context.Context, statusID uint) (*status.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, statusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("status %d not found", statusID))
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("status %q not found", name))
		}
		return nil, fmt.Errorf("failed to get status by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StatusRepository) GetByIDs(ctx context.Context, statusIDs []uint) (map[uint]*status.Status, error) {
	result := make(map[uint]*status.Status, len(statusIDs))
	if len(statusIDs) == 0 {
		return result, nil
	}

	var statusModels []models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", statusIDs).Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get statuses by ids: %w", err)
	}

	for i := range statusModels {
		s, err := r.mapper.ToDomain(&statusModels[i])
		if err != nil {
			return nil, err
		}
		result[s.ID()] = s
	}
	return result, nil
}

func (r *StatusRepository) GetDefault(ctx context.Context) (*status.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("display_order ASC, id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("no statuses configured")
		}
		return nil, fmt.Errorf("failed to get default status: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	var statusModels []models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("display_order ASC, id ASC").Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make([]*status.Status, len(statusModels))
	for i := range statusModels {
		s, err := r.mapper.ToDomain(&statusModels[i])
		if err != nil {
			return nil, err
		}
		statuses[i] = s
	}
	return statuses, nil
}
