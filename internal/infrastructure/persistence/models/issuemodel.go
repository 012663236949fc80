package models

type IssueModel struct {
	ID              uint   `gorm:"primaryKey"`
	ProjectID       uint   `gorm:"not null;index"`
	TicketNumber    string `gorm:"uniqueIndex;size:20;not null"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	Status          string `gorm:"size:20;not null;index"`
	HierarchyNodeID *uint  `gorm:"index"`
	PriorityID      uint   `gorm:"index"`
	ReportedBy      uint   `gorm:"not null;index"`
	AssignedTo      *uint  `gorm:"index"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt      *int64
	ClosedAt        *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return "issues"
}
