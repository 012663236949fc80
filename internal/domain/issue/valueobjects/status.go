package valueobjects

import "fmt"

type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
	StatusReopened   IssueStatus = "reopened"
)

var validIssueStatuses = map[IssueStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusReopened:   true,
}

var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	StatusPending: {
		StatusInProgress,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
		StatusReopened,
	},
	StatusClosed: {
		StatusReopened,
	},
	StatusReopened: {
		StatusInProgress,
	},
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	return validIssueStatuses[s]
}

func (s IssueStatus) CanTransitionTo(newStatus IssueStatus) bool {
	allowed, ok := issueStatusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s IssueStatus) IsPending() bool {
	return s == StatusPending
}

func (s IssueStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s IssueStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s IssueStatus) IsClosed() bool {
	return s == StatusClosed
}

func (s IssueStatus) IsReopened() bool {
	return s == StatusReopened
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
