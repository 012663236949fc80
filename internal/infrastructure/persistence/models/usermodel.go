package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Status       string `gorm:"size:20;not null;default:active;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type ProjectUserRoleModel struct {
	ID              uint  `gorm:"primaryKey"`
	ProjectID       uint  `gorm:"not null;index:idx_pur_project_node"`
	UserID          uint  `gorm:"not null;index"`
	RoleID          uint  `gorm:"not null"`
	HierarchyNodeID uint  `gorm:"not null;index:idx_pur_project_node"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ProjectUserRoleModel) TableName() string {
	return "project_user_roles"
}

type InternalProjectUserRoleModel struct {
	ID             uint  `gorm:"primaryKey"`
	ProjectID      uint  `gorm:"not null;index:idx_ipur_project_node"`
	UserID         uint  `gorm:"not null;index"`
	RoleID         uint  `gorm:"not null"`
	InternalNodeID uint  `gorm:"not null;index:idx_ipur_project_node"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
}

func (InternalProjectUserRoleModel) TableName() string {
	return "internal_project_user_roles"
}
