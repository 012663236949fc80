package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	BulkCreate(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, receiverID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, receiverID uint) error
}
