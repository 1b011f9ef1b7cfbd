package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	vo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/authorization"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}
	// Unknown plans and roles degrade to the least privileged value.
	plan, _ := vo.NewSubscriptionPlan(model.SubscriptionPlan)

	entity, err := user.ReconstructUser(
		model.ID,
		email,
		model.FullName,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		plan,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:               entity.ID(),
		Email:            entity.Email().String(),
		FullName:         entity.FullName(),
		PasswordHash:     entity.PasswordHash(),
		Role:             entity.Role().String(),
		SubscriptionPlan: entity.SubscriptionPlan().String(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}

// SettingsToModel encodes the preference document as JSON.
func SettingsToModel(s *setting.UserSettings) (*models.UserSettingsModel, error) {
	data, err := json.Marshal(s.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return &models.UserSettingsModel{
		UserID:    s.UserID,
		Settings:  data,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

// SettingsToEntity decodes over the defaults so keys added later keep their
// default value for users who saved before they existed.
func SettingsToEntity(model *models.UserSettingsModel) (*setting.UserSettings, error) {
	s := setting.Defaults()
	if len(model.Settings) > 0 {
		if err := json.Unmarshal(model.Settings, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}
	return &setting.UserSettings{
		UserID:    model.UserID,
		Settings:  s,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
