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

type TransitionRepository struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
}

func NewTransitionRepository(database *gorm.DB) *TransitionRepository {
	return &TransitionRepository{
		db:     database,
		mapper: mappers.NewStatusMapper(),
	}
}

func (r *TransitionRepository) Save(ctx context.Context, t *status.Transition) error {
	model, err := r.mapper.TransitionToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save transition: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TransitionRepository) Update(ctx context.Context, t *status.Transition) error {
	model, err := r.mapper.TransitionToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TransitionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"required_roles":        model.RequiredRoles,
			"requires_confirmation": model.RequiresConfirmation,
			"message":               model.Message,
			"updated_at":            model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transition: %w", result.Error)
	}

	return nil
}

func (r *TransitionRepository) Delete(ctx context.Context, transitionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TransitionModel{}, transitionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("transition %d not found", transitionID))
	}

	return nil
}

func (r *TransitionRepository) GetByID(ctx context.Context, transitionID uint) (*status.Transition, error) {
	var model models.TransitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, transitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transition %d not found", transitionID))
		}
		return nil, fmt.Errorf("failed to get transition: %w", err)
	}

	return r.mapper.TransitionToDomain(&model)
}

func (r *TransitionRepository) GetByEdge(ctx context.Context, fromStatusID, toStatusID uint) (*status.Transition, error) {
	var model models.TransitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("from_status_id = ? AND to_status_id = ?", fromStatusID, toStatusID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("transition from status %d to status %d not found", fromStatusID, toStatusID))
		}
		return nil, fmt.Errorf("failed to get transition: %w", err)
	}

	return r.mapper.TransitionToDomain(&model)
}

func (r *TransitionRepository) ListFrom(ctx context.Context, fromStatusID uint) ([]*status.Transition, error) {
	var transitionModels []models.TransitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("from_status_id = ?", fromStatusID).
		Order("to_status_id ASC").
		Find(&transitionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}

	return r.toDomainSlice(transitionModels)
}

func (r *TransitionRepository) List(ctx context.Context) ([]*status.Transition, error) {
	var transitionModels []models.TransitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("from_status_id ASC, to_status_id ASC").Find(&transitionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}

	return r.toDomainSlice(transitionModels)
}

func (r *TransitionRepository) DeleteByStatus(ctx context.Context, statusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("from_status_id = ? OR to_status_id = ?", statusID, statusID).
		Delete(&models.TransitionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete transitions: %w", err)
	}
	return nil
}

func (r *TransitionRepository) toDomainSlice(transitionModels []models.TransitionModel) ([]*status.Transition, error) {
	transitions := make([]*status.Transition, len(transitionModels))
	for i := range transitionModels {
		t, err := r.mapper.TransitionToDomain(&transitionModels[i])
		if err != nil {
			return nil, err
		}
		transitions[i] = t
	}
	return transitions, nil
}
