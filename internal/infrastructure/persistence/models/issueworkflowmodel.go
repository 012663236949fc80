package models

type IssueAssignmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	IssueID    uint   `gorm:"not null;index"`
	AssigneeID uint   `gorm:"not null;index"`
	AssignedBy uint   `gorm:"not null"`
	Status     string `gorm:"size:20;not null;index"`
	Remarks    string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (IssueAssignmentModel) TableName() string {
	return "issue_assignments"
}

type IssueEscalationModel struct {
	ID          uint   `gorm:"primaryKey"`
	IssueID     uint   `gorm:"not null;index"`
	FromTier    uint   `gorm:"not null"`
	ToTier      *uint  `gorm:"index"`
	Reason      string `gorm:"type:text;not null"`
	EscalatedBy uint   `gorm:"not null"`
	EscalatedAt int64  `gorm:"not null;index"`
}

func (IssueEscalationModel) TableName() string {
	return "issue_escalations"
}

type IssueResolutionModel struct {
	ID         uint   `gorm:"primaryKey"`
	IssueID    uint   `gorm:"not null;index"`
	Reason     string `gorm:"type:text;not null"`
	ResolvedBy uint   `gorm:"not null;index"`
	ResolvedAt int64  `gorm:"not null;index"`
}

func (IssueResolutionModel) TableName() string {
	return "issue_resolutions"
}

type IssueRejectionModel struct {
	ID         uint   `gorm:"primaryKey"`
	IssueID    uint   `gorm:"not null;index"`
	Reason     string `gorm:"type:text;not null"`
	RejectedBy uint   `gorm:"not null"`
	RejectedAt int64  `gorm:"not null"`
}

func (IssueRejectionModel) TableName() string {
	return "issue_rejections"
}

type IssueReRaiseModel struct {
	ID         uint   `gorm:"primaryKey"`
	IssueID    uint   `gorm:"not null;index"`
	Reason     string `gorm:"type:text;not null"`
	ReRaisedBy uint   `gorm:"not null"`
	ReRaisedAt int64  `gorm:"not null"`
}

func (IssueReRaiseModel) TableName() string {
	return "issue_re_raises"
}
