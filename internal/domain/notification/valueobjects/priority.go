package valueobjects

import "fmt"

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityMedium NotificationPriority = "MEDIUM"
	PriorityHigh   NotificationPriority = "HIGH"
	PriorityUrgent NotificationPriority = "URGENT"
)

var validNotificationPriorities = map[NotificationPriority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p NotificationPriority) String() string {
	return string(p)
}

func (p NotificationPriority) IsValid() bool {
	return validNotificationPriorities[p]
}

func NewNotificationPriority(s string) (NotificationPriority, error) {
	p := NotificationPriority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid notification priority: %s", s)
	}
	return p, nil
}
