package valueobjects

import "fmt"

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentCompleted AssignmentStatus = "completed"
)

var validAssignmentStatuses = map[AssignmentStatus]bool{
	AssignmentPending:   true,
	AssignmentAccepted:  true,
	AssignmentRejected:  true,
	AssignmentCompleted: true,
}

func (s AssignmentStatus) String() string {
	return string(s)
}

func (s AssignmentStatus) IsValid() bool {
	return validAssignmentStatuses[s]
}

func NewAssignmentStatus(s string) (AssignmentStatus, error) {
	status := AssignmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid assignment status: %s", s)
	}
	return status, nil
}
