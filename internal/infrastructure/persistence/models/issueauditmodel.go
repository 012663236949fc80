package models

// Audit tables are append-only; rows are never updated or deleted.

type IssueActionModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	Actor     uint   `gorm:"not null"`
	Name      string `gorm:"size:50;not null"`
	Notes     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (IssueActionModel) TableName() string {
	return "issue_actions"
}

type IssueStatusHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	Actor     uint   `gorm:"not null"`
	OldStatus string `gorm:"size:20;not null"`
	NewStatus string `gorm:"size:20;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (IssueStatusHistoryModel) TableName() string {
	return "issue_status_histories"
}

type IssueHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	Actor     uint   `gorm:"not null"`
	Event     string `gorm:"size:50;not null"`
	Notes     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (IssueHistoryModel) TableName() string {
	return "issue_histories"
}
