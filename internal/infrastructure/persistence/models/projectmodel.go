package models

type InstituteModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Code      string `gorm:"uniqueIndex;size:50"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InstituteModel) TableName() string {
	return "institutes"
}

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	InstituteID uint   `gorm:"not null;index"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

type RoleModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

type PermissionModel struct {
	ID       uint   `gorm:"primaryKey"`
	Resource string `gorm:"size:100;not null;uniqueIndex:idx_perm_resource_action"`
	Action   string `gorm:"size:50;not null;uniqueIndex:idx_perm_resource_action"`
}

func (PermissionModel) TableName() string {
	return "permissions"
}

type RolePermissionModel struct {
	ID           uint `gorm:"primaryKey"`
	RoleID       uint `gorm:"not null;uniqueIndex:idx_role_permission"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_role_permission"`
}

func (RolePermissionModel) TableName() string {
	return "role_permissions"
}
