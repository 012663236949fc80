package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UnreadCache is the slice of the redis cache these use cases touch. A nil
// implementation is tolerated everywhere; the database stays the source of
// truth.
type UnreadCache interface {
	Get(ctx context.Context, userID uint) (int64, bool, error)
	Set(ctx context.Context, userID uint, count int64) error
	Invalidate(ctx context.Context, userID uint) error
}

type MarkNotificationReadCommand struct {
	NotificationID uint
	ReceiverID     uint
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.NotificationRepository
	cache            UnreadCache
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(
	notificationRepo notification.NotificationRepository,
	cache UnreadCache,
	logger logger.Interface,
) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.ReceiverID == 0 {
		return errors.NewValidationError("receiver ID is required")
	}

	target, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "notification_id", cmd.NotificationID, "error", err)
		return err
	}
	if target.ReceiverID() != cmd.ReceiverID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", cmd.NotificationID, "error", err)
		return err
	}

	uc.invalidate(ctx, cmd.ReceiverID)
	return nil
}

func (uc *MarkNotificationReadUseCase) invalidate(ctx context.Context, receiverID uint) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, receiverID); err != nil {
		uc.logger.Warnw("failed to invalidate unread count cache", "receiver_id", receiverID, "error", err)
	}
}

type MarkAllNotificationsReadCommand struct {
	ReceiverID uint
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	cache            UnreadCache
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(
	notificationRepo notification.NotificationRepository,
	cache UnreadCache,
	logger logger.Interface,
) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
		logger:           logger,
	}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, cmd MarkAllNotificationsReadCommand) error {
	if cmd.ReceiverID == 0 {
		return errors.NewValidationError("receiver ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.ReceiverID); err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "receiver_id", cmd.ReceiverID, "error", err)
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cmd.ReceiverID); err != nil {
			uc.logger.Warnw("failed to invalidate unread count cache", "receiver_id", cmd.ReceiverID, "error", err)
		}
	}
	return nil
}
