package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UnreadCountQuery struct {
	ReceiverID uint
}

type UnreadCountResult struct {
	Count int64 `json:"count"`
}

// UnreadCountUseCase answers the badge query. The redis cache is consulted
// first; a miss or cache error falls through to the database count.
type UnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	cache            UnreadCache
	logger           logger.Interface
}

func NewUnreadCountUseCase(
	notificationRepo notification.NotificationRepository,
	cache UnreadCache,
	logger logger.Interface,
) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		cache:            cache,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error) {
	if query.ReceiverID == 0 {
		return nil, errors.NewValidationError("receiver ID is required")
	}

	if uc.cache != nil {
		count, found, err := uc.cache.Get(ctx, query.ReceiverID)
		if err != nil {
			uc.logger.Warnw("unread count cache read failed", "receiver_id", query.ReceiverID, "error", err)
		} else if found {
			return &UnreadCountResult{Count: count}, nil
		}
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.ReceiverID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "receiver_id", query.ReceiverID, "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, query.ReceiverID, count); err != nil {
			uc.logger.Warnw("unread count cache write failed", "receiver_id", query.ReceiverID, "error", err)
		}
	}

	return &UnreadCountResult{Count: count}, nil
}
