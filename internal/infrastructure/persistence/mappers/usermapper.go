package mappers

import (
	"claimdesk/internal/domain/directory"
	"claimdesk/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *directory.User) *models.UserModel
	ToDomain(model *models.UserModel) (*directory.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *directory.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Area:         u.Area(),
		Role:         u.Role(),
		PasswordHash: u.PasswordHash(),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*directory.User, error) {
	return directory.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.Area,
		model.Role,
		model.PasswordHash,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
