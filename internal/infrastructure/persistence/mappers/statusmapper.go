package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"claimdesk/internal/domain/status"
	"claimdesk/internal/infrastructure/persistence/models"
)

// StatusMapper converts workflow catalog entities to and from their
// persistence models.
type StatusMapper interface {
	ToModel(s *status.Status) (*models.StatusModel, error)
	ToDomain(model *models.StatusModel) (*status.Status, error)
	SubStatusToModel(ss *status.SubStatus) *models.SubStatusModel
	SubStatusToDomain(model *models.SubStatusModel) (*status.SubStatus, error)
	TransitionToModel(t *status.Transition) (*models.TransitionModel, error)
	TransitionToDomain(model *models.TransitionModel) (*status.Transition, error)
}

type StatusMapperImpl struct{}

func NewStatusMapper() StatusMapper {
	return &StatusMapperImpl{}
}

func (m *StatusMapperImpl) ToModel(s *status.Status) (*models.StatusModel, error) {
	model := &models.StatusModel{
		ID:           s.ID(),
		Name:         s.Name(),
		Color:        s.Color(),
		DisplayOrder: s.DisplayOrder(),
		Description:  s.Description(),
		Area:         s.Area(),
		CreatedAt:    s.CreatedAt().UnixMilli(),
		UpdatedAt:    s.UpdatedAt().UnixMilli(),
	}

	if len(s.Permissions()) > 0 {
		data, err := json.Marshal(s.Permissions())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal status permissions: %w", err)
		}
		model.Permissions = datatypes.JSON(data)
	}

	return model, nil
}

func (m *StatusMapperImpl) ToDomain(model *models.StatusModel) (*status.Status, error) {
	var permissions map[string]interface{}
	if len(model.Permissions) > 0 {
		if err := json.Unmarshal(model.Permissions, &permissions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal status permissions (id=%d): %w", model.ID, err)
		}
	}

	return status.ReconstructStatus(
		model.ID,
		model.Name,
		model.Color,
		model.DisplayOrder,
		model.Description,
		model.Area,
		permissions,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *StatusMapperImpl) SubStatusToModel(ss *status.SubStatus) *models.SubStatusModel {
	return &models.SubStatusModel{
		ID:           ss.ID(),
		StatusID:     ss.StatusID(),
		Name:         ss.Name(),
		DisplayOrder: ss.DisplayOrder(),
		Description:  ss.Description(),
		CreatedAt:    ss.CreatedAt().UnixMilli(),
		UpdatedAt:    ss.UpdatedAt().UnixMilli(),
	}
}

func (m *StatusMapperImpl) SubStatusToDomain(model *models.SubStatusModel) (*status.SubStatus, error) {
	return status.ReconstructSubStatus(
		model.ID,
		model.StatusID,
		model.Name,
		model.DisplayOrder,
		model.Description,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *StatusMapperImpl) TransitionToModel(t *status.Transition) (*models.TransitionModel, error) {
	model := &models.TransitionModel{
		ID:                   t.ID(),
		FromStatusID:         t.FromStatusID(),
		ToStatusID:           t.ToStatusID(),
		RequiresConfirmation: t.RequiresConfirmation(),
		Message:              t.Message(),
		CreatedAt:            t.CreatedAt().UnixMilli(),
		UpdatedAt:            t.UpdatedAt().UnixMilli(),
	}

	data, err := json.Marshal(t.RequiredRoles())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required roles: %w", err)
	}
	model.RequiredRoles = datatypes.JSON(data)

	return model, nil
}

func (m *StatusMapperImpl) TransitionToDomain(model *models.TransitionModel) (*status.Transition, error) {
	var roles []string
	if len(model.RequiredRoles) > 0 {
		if err := json.Unmarshal(model.RequiredRoles, &roles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal required roles (id=%d): %w", model.ID, err)
		}
	}

	return status.ReconstructTransition(
		model.ID,
		model.FromStatusID,
		model.ToStatusID,
		roles,
		model.RequiresConfirmation,
		model.Message,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
