package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/query"
)

type ListNotificationsQuery struct {
	ReceiverID uint
	Page       int
	PageSize   int
}

func (q ListNotificationsQuery) PageFilter() query.PageFilter {
	return query.PageFilter{Page: q.Page, PageSize: q.PageSize}
}

type NotificationDTO struct {
	ID        uint                   `json:"id"`
	Type      string                 `json:"type"`
	SenderID  *uint                  `json:"sender_id,omitempty"`
	IssueID   *uint                  `json:"issue_id,omitempty"`
	ProjectID *uint                  `json:"project_id,omitempty"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Priority  string                 `json:"priority"`
	IsRead    bool                   `json:"is_read"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type ListNotificationsResult struct {
	Notifications []NotificationDTO `json:"notifications"`
	Total         int64             `json:"total"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.ReceiverID == 0 {
		return nil, errors.NewValidationError("receiver ID is required")
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	page := query.PageFilter()
	notifications, total, err := uc.notificationRepo.ListByReceiver(ctx, query.ReceiverID, page.Limit(), page.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "receiver_id", query.ReceiverID, "error", err)
		return nil, err
	}

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toNotificationDTO(n))
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		Total:         total,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}, nil
}

func toNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID(),
		Type:      n.Type().String(),
		SenderID:  n.SenderID(),
		IssueID:   n.IssueID(),
		ProjectID: n.ProjectID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      n.Data(),
		Priority:  n.Priority().String(),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}
