package issue

import (
	"time"

	vo "helpdesk/internal/domain/issue/valueobjects"
)

// Audit rows are append-only: created once per workflow event, never mutated
// or deleted. They are plain records rather than aggregates.

// Action names recorded in the audit trail.
const (
	ActionAccepted  = "accepted"
	ActionAssigned  = "assigned"
	ActionUnassigned = "unassigned"
	ActionEscalated = "escalated"
	ActionResolved  = "resolved"
	ActionClosed    = "closed"
	ActionRejected  = "rejected"
	ActionReRaised  = "re_raised"
)

// Action captures a named workflow action on an issue.
type Action struct {
	ID        uint
	IssueID   uint
	Actor     uint
	Name      string
	Notes     string
	CreatedAt time.Time
}

// StatusHistory captures one old -> new status edge.
type StatusHistory struct {
	ID        uint
	IssueID   uint
	Actor     uint
	OldStatus vo.IssueStatus
	NewStatus vo.IssueStatus
	CreatedAt time.Time
}

// History is a free-text audit note tied to a workflow event.
type History struct {
	ID        uint
	IssueID   uint
	Actor     uint
	Event     string
	Notes     string
	CreatedAt time.Time
}

// NewAction builds an audit action row for the given event.
func NewAction(issueID, actor uint, name, notes string) *Action {
	return &Action{
		IssueID:   issueID,
		Actor:     actor,
		Name:      name,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}

// NewStatusHistory builds a status transition audit row.
func NewStatusHistory(issueID, actor uint, oldStatus, newStatus vo.IssueStatus) *StatusHistory {
	return &StatusHistory{
		IssueID:   issueID,
		Actor:     actor,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		CreatedAt: time.Now(),
	}
}

// NewHistory builds a free-text audit row.
func NewHistory(issueID, actor uint, event, notes string) *History {
	return &History{
		IssueID:   issueID,
		Actor:     actor,
		Event:     event,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}
