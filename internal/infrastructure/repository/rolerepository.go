package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/role"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewRoleRepository(database *gorm.DB) *RoleRepository {
	return &RoleRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *RoleRepository) Save(ctx context.Context, ro *role.Role) error {
	if err := ro.Validate(); err != nil {
		return err
	}

	model := r.mapper.RoleToModel(ro)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("role slug already exists")
		}
		return fmt.Errorf("failed to save role: %w", err)
	}

	ro.ID = model.ID
	return nil
}

func (r *RoleRepository) Update(ctx context.Context, ro *role.Role) error {
	if err := ro.Validate(); err != nil {
		return err
	}

	model := r.mapper.RoleToModel(ro)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RoleModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Slug", "Description").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}

	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role_id = ?", id).
		Delete(&models.RolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete role permissions: %w", err)
	}

	if err := tx.Delete(&models.RoleModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*role.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("role not found")
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return r.mapper.RoleToDomain(&model), nil
}

func (r *RoleRepository) GetBySlug(ctx context.Context, slug string) (*role.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("role not found")
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return r.mapper.RoleToDomain(&model), nil
}

func (r *RoleRepository) List(ctx context.Context) ([]*role.Role, error) {
	var rows []models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*role.Role, 0, len(rows))
	for idx := range rows {
		roles = append(roles, r.mapper.RoleToDomain(&rows[idx]))
	}

	return roles, nil
}

func (r *RoleRepository) ListPermissions(ctx context.Context, roleID uint) ([]*role.Permission, error) {
	var rows []models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PermissionModel{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	permissions := make([]*role.Permission, 0, len(rows))
	for idx := range rows {
		permissions = append(permissions, r.mapper.PermissionToDomain(&rows[idx]))
	}

	return permissions, nil
}

func (r *RoleRepository) GrantPermission(ctx context.Context, roleID, permissionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	link := models.RolePermissionModel{RoleID: roleID, PermissionID: permissionID}
	if err := tx.Create(&link).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to grant permission: %w", err)
	}

	return nil
}

func (r *RoleRepository) RevokePermission(ctx context.Context, roleID, permissionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&models.RolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}

	return nil
}
