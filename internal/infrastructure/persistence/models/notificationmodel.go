package models

import "gorm.io/datatypes"

type NotificationModel struct {
	ID         uint           `gorm:"primaryKey"`
	Type       string         `gorm:"size:50;not null;index"`
	SenderID   *uint          `gorm:"index"`
	ReceiverID uint           `gorm:"not null;index"`
	IssueID    *uint          `gorm:"index"`
	ProjectID  *uint          `gorm:"index"`
	Title      string         `gorm:"size:200;not null"`
	Message    string         `gorm:"type:text;not null"`
	Data       datatypes.JSON `gorm:"type:json"`
	Priority   string         `gorm:"size:10;not null;default:MEDIUM"`
	IsRead     bool           `gorm:"not null;default:false;index"`
	ReadAt     *int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
