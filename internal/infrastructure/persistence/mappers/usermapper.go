package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	RoleToModel(r *user.ProjectUserRole) *models.ProjectUserRoleModel
	RoleToDomain(model *models.ProjectUserRoleModel) *user.ProjectUserRole
	InternalRoleToModel(r *user.InternalProjectUserRole) *models.InternalProjectUserRoleModel
	InternalRoleToDomain(model *models.InternalProjectUserRoleModel) *user.InternalProjectUserRole
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Status:       string(u.Status()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		user.UserStatus(model.Status),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) RoleToModel(r *user.ProjectUserRole) *models.ProjectUserRoleModel {
	return &models.ProjectUserRoleModel{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		UserID:          r.UserID,
		RoleID:          r.RoleID,
		HierarchyNodeID: r.HierarchyNodeID,
	}
}

func (m *UserMapperImpl) RoleToDomain(model *models.ProjectUserRoleModel) *user.ProjectUserRole {
	return &user.ProjectUserRole{
		ID:              model.ID,
		ProjectID:       model.ProjectID,
		UserID:          model.UserID,
		RoleID:          model.RoleID,
		HierarchyNodeID: model.HierarchyNodeID,
	}
}

func (m *UserMapperImpl) InternalRoleToModel(r *user.InternalProjectUserRole) *models.InternalProjectUserRoleModel {
	return &models.InternalProjectUserRoleModel{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		UserID:         r.UserID,
		RoleID:         r.RoleID,
		InternalNodeID: r.InternalNodeID,
	}
}

func (m *UserMapperImpl) InternalRoleToDomain(model *models.InternalProjectUserRoleModel) *user.InternalProjectUserRole {
	return &user.InternalProjectUserRole{
		ID:             model.ID,
		ProjectID:      model.ProjectID,
		UserID:         model.UserID,
		RoleID:         model.RoleID,
		InternalNodeID: model.InternalNodeID,
	}
}
