package notification

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/notification/valueobjects"
)

// Notification is one durable in-app message to one receiver. Rows are
// immutable once created except for the read flag; delivery beyond the insert
// (websocket push, email) is a downstream concern.
type Notification struct {
	id         uint
	notifType  vo.NotificationType
	senderID   *uint
	receiverID uint
	issueID    *uint
	projectID  *uint
	title      string
	message    string
	data       map[string]interface{}
	priority   vo.NotificationPriority
	isRead     bool
	readAt     *time.Time
	createdAt  time.Time
}

func NewNotification(
	notifType vo.NotificationType,
	senderID *uint,
	receiverID uint,
	issueID *uint,
	projectID *uint,
	title string,
	message string,
	data map[string]interface{},
	priority vo.NotificationPriority,
) (*Notification, error) {
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if receiverID == 0 {
		return nil, fmt.Errorf("receiver ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if !priority.IsValid() {
		priority = vo.PriorityMedium
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	return &Notification{
		notifType:  notifType,
		senderID:   senderID,
		receiverID: receiverID,
		issueID:    issueID,
		projectID:  projectID,
		title:      title,
		message:    message,
		data:       data,
		priority:   priority,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	notifType vo.NotificationType,
	senderID *uint,
	receiverID uint,
	issueID *uint,
	projectID *uint,
	title string,
	message string,
	data map[string]interface{},
	priority vo.NotificationPriority,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if receiverID == 0 {
		return nil, fmt.Errorf("receiver ID is required")
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	return &Notification{
		id:         id,
		notifType:  notifType,
		senderID:   senderID,
		receiverID: receiverID,
		issueID:    issueID,
		projectID:  projectID,
		title:      title,
		message:    message,
		data:       data,
		priority:   priority,
		isRead:     isRead,
		readAt:     readAt,
		createdAt:  createdAt,
	}, nil
}

func (n *Notification) ID() uint                          { return n.id }
func (n *Notification) Type() vo.NotificationType         { return n.notifType }
func (n *Notification) SenderID() *uint                   { return n.senderID }
func (n *Notification) ReceiverID() uint                  { return n.receiverID }
func (n *Notification) IssueID() *uint                    { return n.issueID }
func (n *Notification) ProjectID() *uint                  { return n.projectID }
func (n *Notification) Title() string                     { return n.title }
func (n *Notification) Message() string                   { return n.message }
func (n *Notification) Priority() vo.NotificationPriority { return n.priority }
func (n *Notification) IsRead() bool                      { return n.isRead }
func (n *Notification) ReadAt() *time.Time                { return n.readAt }
func (n *Notification) CreatedAt() time.Time              { return n.createdAt }

// Data returns a copy of the denormalized context payload.
func (n *Notification) Data() map[string]interface{} {
	dataCopy := make(map[string]interface{}, len(n.data))
	for k, v := range n.data {
		dataCopy[k] = v
	}
	return dataCopy
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag; marking twice is a no-op.
func (n *Notification) MarkAsRead() {
	if n.isRead {
		return
	}
	now := time.Now()
	n.isRead = true
	n.readAt = &now
}
