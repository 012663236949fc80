package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	dataJSON, err := json.Marshal(n.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	return &models.NotificationModel{
		ID:         n.ID(),
		Type:       n.Type().String(),
		SenderID:   n.SenderID(),
		ReceiverID: n.ReceiverID(),
		IssueID:    n.IssueID(),
		ProjectID:  n.ProjectID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Data:       datatypes.JSON(dataJSON),
		Priority:   n.Priority().String(),
		IsRead:     n.IsRead(),
		ReadAt:     timePtrToMilli(n.ReadAt()),
		CreatedAt:  n.CreatedAt().UnixMilli(),
	}, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notifType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewNotificationPriority(model.Priority)
	if err != nil {
		priority = vo.PriorityMedium
	}

	var data map[string]interface{}
	if len(model.Data) > 0 {
		if err := json.Unmarshal(model.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification data: %w", err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		notifType,
		model.SenderID,
		model.ReceiverID,
		model.IssueID,
		model.ProjectID,
		model.Title,
		model.Message,
		data,
		priority,
		model.IsRead,
		milliPtrToTime(model.ReadAt),
		milliToTime(model.CreatedAt),
	)
}
