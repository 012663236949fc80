package models

type HierarchyNodeModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index"`
	ParentID  *uint  `gorm:"index"`
	Level     int    `gorm:"not null"`
	Name      string `gorm:"uniqueIndex;size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (HierarchyNodeModel) TableName() string {
	return "hierarchy_nodes"
}

type InternalNodeModel struct {
	ID        uint   `gorm:"primaryKey"`
	ParentID  *uint  `gorm:"index"`
	Level     int    `gorm:"not null"`
	Name      string `gorm:"uniqueIndex;size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InternalNodeModel) TableName() string {
	return "internal_nodes"
}
