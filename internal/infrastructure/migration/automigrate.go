package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.InstituteModel{},
		&models.ProjectModel{},
		&models.RoleModel{},
		&models.PermissionModel{},
		&models.RolePermissionModel{},
		&models.ProjectUserRoleModel{},
		&models.InternalProjectUserRoleModel{},
		&models.HierarchyNodeModel{},
		&models.InternalNodeModel{},
		&models.IssueModel{},
		&models.IssueAssignmentModel{},
		&models.IssueEscalationModel{},
		&models.IssueResolutionModel{},
		&models.IssueRejectionModel{},
		&models.IssueReRaiseModel{},
		&models.IssueActionModel{},
		&models.IssueStatusHistoryModel{},
		&models.IssueHistoryModel{},
		&models.NotificationModel{},
	}
}
