package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/db"
)

// ProjectUserRoleRepository is the routing table for fan-out: who sits where
// in a project's external hierarchy.
type ProjectUserRoleRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewProjectUserRoleRepository(database *gorm.DB) *ProjectUserRoleRepository {
	return &ProjectUserRoleRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *ProjectUserRoleRepository) Save(ctx context.Context, role *user.ProjectUserRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	model := r.mapper.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save role placement: %w", err)
	}

	role.ID = model.ID
	return nil
}

func (r *ProjectUserRoleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.ProjectUserRoleModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete role placement: %w", err)
	}

	return nil
}

// GetByProjectAndUser returns the user's placement in the project, or nil
// when the user holds no role there.
func (r *ProjectUserRoleRepository) GetByProjectAndUser(ctx context.Context, projectID, userID uint) (*user.ProjectUserRole, error) {
	var model models.ProjectUserRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role placement: %w", err)
	}

	return r.mapper.RoleToDomain(&model), nil
}

// ListActiveUsersAtNode joins against users so deactivated accounts never
// receive fan-out notifications.
func (r *ProjectUserRoleRepository) ListActiveUsersAtNode(ctx context.Context, projectID, hierarchyNodeID uint) ([]*user.ProjectUserRole, error) {
	var rows []models.ProjectUserRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ProjectUserRoleModel{}).
		Joins("JOIN users ON users.id = project_user_roles.user_id").
		Where("project_user_roles.project_id = ? AND project_user_roles.hierarchy_node_id = ? AND users.status = ?",
			projectID, hierarchyNodeID, constants.UserStatusActive).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users at node: %w", err)
	}

	placements := make([]*user.ProjectUserRole, 0, len(rows))
	for idx := range rows {
		placements = append(placements, r.mapper.RoleToDomain(&rows[idx]))
	}

	return placements, nil
}

// InternalProjectUserRoleRepository is the internal-organization counterpart.
type InternalProjectUserRoleRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewInternalProjectUserRoleRepository(database *gorm.DB) *InternalProjectUserRoleRepository {
	return &InternalProjectUserRoleRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *InternalProjectUserRoleRepository) Save(ctx context.Context, role *user.InternalProjectUserRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	model := r.mapper.InternalRoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save internal role placement: %w", err)
	}

	role.ID = model.ID
	return nil
}

func (r *InternalProjectUserRoleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.InternalProjectUserRoleModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete internal role placement: %w", err)
	}

	return nil
}

// ListActiveUsersAtNodes returns placements at any of the given internal
// nodes for the project, restricted to active users.
func (r *InternalProjectUserRoleRepository) ListActiveUsersAtNodes(ctx context.Context, projectID uint, internalNodeIDs []uint) ([]*user.InternalProjectUserRole, error) {
	if len(internalNodeIDs) == 0 {
		return nil, nil
	}

	var rows []models.InternalProjectUserRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.InternalProjectUserRoleModel{}).
		Joins("JOIN users ON users.id = internal_project_user_roles.user_id").
		Where("internal_project_user_roles.project_id = ? AND internal_project_user_roles.internal_node_id IN ? AND users.status = ?",
			projectID, internalNodeIDs, constants.UserStatusActive).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users at internal nodes: %w", err)
	}

	placements := make([]*user.InternalProjectUserRole, 0, len(rows))
	for idx := range rows {
		placements = append(placements, r.mapper.InternalRoleToDomain(&rows[idx]))
	}

	return placements, nil
}
