package valueobjects

import "fmt"

// NotificationType is persisted verbatim and must round-trip exactly.
type NotificationType string

const (
	TypeIssueCreated     NotificationType = "ISSUE_CREATED"
	TypeIssueAssigned    NotificationType = "ISSUE_ASSIGNED"
	TypeIssueResolved    NotificationType = "ISSUE_RESOLVED"
	TypeIssueConfirmed   NotificationType = "ISSUE_CONFIRMED"
	TypeIssueRejected    NotificationType = "ISSUE_REJECTED"
	TypeIssueReopened    NotificationType = "ISSUE_REOPENED"
	TypeIssueEscalated   NotificationType = "ISSUE_ESCALATED"
	TypeIssueCommented   NotificationType = "ISSUE_COMMENTED"
	TypePasswordUpdated  NotificationType = "PASSWORD_UPDATED"
	TypeLoginAlert       NotificationType = "LOGIN_ALERT"
	TypeUserDeactivated  NotificationType = "USER_DEACTIVATED"
	TypeUserReactivated  NotificationType = "USER_REACTIVATED"
	TypeProfileUpdated   NotificationType = "PROFILE_UPDATED"
	TypeSystemAlert      NotificationType = "SYSTEM_ALERT"
	TypeBroadcastMessage NotificationType = "BROADCAST_MESSAGE"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeIssueCreated:     true,
	TypeIssueAssigned:    true,
	TypeIssueResolved:    true,
	TypeIssueConfirmed:   true,
	TypeIssueRejected:    true,
	TypeIssueReopened:    true,
	TypeIssueEscalated:   true,
	TypeIssueCommented:   true,
	TypePasswordUpdated:  true,
	TypeLoginAlert:       true,
	TypeUserDeactivated:  true,
	TypeUserReactivated:  true,
	TypeProfileUpdated:   true,
	TypeSystemAlert:      true,
	TypeBroadcastMessage: true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
