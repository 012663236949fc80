package usecases

import (
	"time"

	"helpdesk/internal/domain/issue"
)

// IssueDTO is the read-side shape shared by the get and list use cases.
type IssueDTO struct {
	ID              uint       `json:"id"`
	ProjectID       uint       `json:"project_id"`
	TicketNumber    string     `json:"ticket_number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	HierarchyNodeID *uint      `json:"hierarchy_node_id,omitempty"`
	PriorityID      uint       `json:"priority_id"`
	ReportedBy      uint       `json:"reported_by"`
	AssignedTo      *uint      `json:"assigned_to,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
}

func toIssueDTO(i *issue.Issue) IssueDTO {
	return IssueDTO{
		ID:              i.ID(),
		ProjectID:       i.ProjectID(),
		TicketNumber:    i.TicketNumber(),
		Title:           i.Title(),
		Description:     i.Description(),
		Status:          i.Status().String(),
		HierarchyNodeID: i.HierarchyNodeID(),
		PriorityID:      i.PriorityID(),
		ReportedBy:      i.ReportedBy(),
		AssignedTo:      i.AssignedTo(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
		ResolvedAt:      i.ResolvedAt(),
		ClosedAt:        i.ClosedAt(),
	}
}

// EscalationDTO is the read-side shape for escalation listings.
type EscalationDTO struct {
	ID          uint      `json:"id"`
	IssueID     uint      `json:"issue_id"`
	FromTier    uint      `json:"from_tier"`
	ToTier      *uint     `json:"to_tier,omitempty"`
	Reason      string    `json:"reason"`
	EscalatedBy uint      `json:"escalated_by"`
	EscalatedAt time.Time `json:"escalated_at"`
}

func toEscalationDTO(e *issue.Escalation) EscalationDTO {
	return EscalationDTO{
		ID:          e.ID(),
		IssueID:     e.IssueID(),
		FromTier:    e.FromTier(),
		ToTier:      e.ToTier(),
		Reason:      e.Reason(),
		EscalatedBy: e.EscalatedBy(),
		EscalatedAt: e.EscalatedAt(),
	}
}
