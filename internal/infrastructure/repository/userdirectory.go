package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"claimdesk/internal/domain/directory"
	"claimdesk/internal/infrastructure/persistence/mappers"
	"claimdesk/internal/infrastructure/persistence/models"
	"claimdesk/internal/shared/db"
	apperrors "claimdesk/internal/shared/errors"
)

// UserDirectory is the database-backed implementation of the directory.
type UserDirectory struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserDirectory(database *gorm.DB) *UserDirectory {
	return &UserDirectory{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserDirectory) Save(ctx context.Context, u *directory.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserDirectory) GetByID(ctx context.Context, userID uint) (*directory.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserDirectory) GetByEmail(ctx context.Context, email string) (*directory.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", email))
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// BatchGetByIDs loads users in one IN query. Unknown IDs are skipped so
// callers can tolerate deleted accounts.
func (r *UserDirectory) BatchGetByIDs(ctx context.Context, userIDs []uint) (map[uint]*directory.User, error) {
	result := make(map[uint]*directory.User, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to batch get users: %w", err)
	}

	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		result[u.ID()] = u
	}
	return result, nil
}

func (r *UserDirectory) List(ctx context.Context) ([]*directory.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*directory.User, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
