package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

// BulkCreate inserts a fan-out batch in a single statement. The domain objects
// are not back-filled with IDs; fan-out callers only need the row count.
func (r *NotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	rows := make([]*models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		model, err := r.mapper.ToModel(n)
		if err != nil {
			return err
		}
		rows = append(rows, model)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to bulk create notifications: %w", err)
	}

	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.NotificationModel{}).
		Where("receiver_id = ?", receiverID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var rows []models.NotificationModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(rows))
	for idx := range rows {
		n, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}

	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationModel{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := time.Now().UnixMilli()

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, receiverID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := time.Now().UnixMilli()

	result := tx.
		Model(&models.NotificationModel{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})

	if result.Error != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", result.Error)
	}

	return nil
}
