package permission

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// PermissionSync mirrors the role/permission tables into casbin_rule so the
// enforcer and the relational source of truth stay in agreement.
type PermissionSync struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPermissionSync(db *gorm.DB, logger logger.Interface) *PermissionSync {
	return &PermissionSync{
		db:     db,
		logger: logger,
	}
}

func (s *PermissionSync) SyncToCasbin() error {
	s.logger.Info("syncing permissions to Casbin...")

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := s.syncRolePermissions(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to sync role permissions: %w", err)
	}

	if err := s.syncUserRoles(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to sync user roles: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("permissions synced to Casbin successfully")
	return nil
}

func (s *PermissionSync) syncRolePermissions(tx *gorm.DB) error {
	query := `
		INSERT INTO casbin_rule (ptype, v0, v1, v2)
		SELECT DISTINCT
			'p',
			r.slug,
			p.resource,
			p.action
		FROM role_permissions rp
		JOIN roles r ON rp.role_id = r.id
		JOIN permissions p ON rp.permission_id = p.id
		WHERE NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'p'
			AND cr.v0 = r.slug
			AND cr.v1 = p.resource
			AND cr.v2 = p.action
		)
	`

	result := tx.Exec(query)
	if result.Error != nil {
		return fmt.Errorf("failed to sync role permissions: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("synced role permissions to Casbin", "count", result.RowsAffected)
	}

	return nil
}

func (s *PermissionSync) syncUserRoles(tx *gorm.DB) error {
	// Placements in either hierarchy grant the role's policies.
	query := `
		INSERT INTO casbin_rule (ptype, v0, v1)
		SELECT DISTINCT
			'g',
			CAST(pur.user_id AS VARCHAR),
			r.slug
		FROM project_user_roles pur
		JOIN roles r ON pur.role_id = r.id
		WHERE NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'g'
			AND cr.v0 = CAST(pur.user_id AS VARCHAR)
			AND cr.v1 = r.slug
		)
	`

	result := tx.Exec(query)
	if result.Error != nil {
		return fmt.Errorf("failed to sync external user roles: %w", result.Error)
	}

	internalQuery := `
		INSERT INTO casbin_rule (ptype, v0, v1)
		SELECT DISTINCT
			'g',
			CAST(ipur.user_id AS VARCHAR),
			r.slug
		FROM internal_project_user_roles ipur
		JOIN roles r ON ipur.role_id = r.id
		WHERE NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'g'
			AND cr.v0 = CAST(ipur.user_id AS VARCHAR)
			AND cr.v1 = r.slug
		)
	`

	internalResult := tx.Exec(internalQuery)
	if internalResult.Error != nil {
		return fmt.Errorf("failed to sync internal user roles: %w", internalResult.Error)
	}

	synced := result.RowsAffected + internalResult.RowsAffected
	if synced > 0 {
		s.logger.Infow("synced user roles to Casbin", "count", synced)
	}

	return nil
}
