package issue

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/issue/valueobjects"
)

// Assignment is one row of the issue assignment audit trail. Multiple rows
// may exist per issue; the trail is never collapsed to a single pointer.
type Assignment struct {
	id         uint
	issueID    uint
	assigneeID uint
	assignedBy uint
	status     vo.AssignmentStatus
	remarks    string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAssignment(issueID, assigneeID, assignedBy uint, remarks string) (*Assignment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if assignedBy == 0 {
		return nil, fmt.Errorf("assigner ID is required")
	}

	now := time.Now()
	return &Assignment{
		issueID:    issueID,
		assigneeID: assigneeID,
		assignedBy: assignedBy,
		status:     vo.AssignmentPending,
		remarks:    remarks,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAssignment(
	id uint,
	issueID, assigneeID, assignedBy uint,
	status vo.AssignmentStatus,
	remarks string,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid assignment status: %s", status)
	}

	return &Assignment{
		id:         id,
		issueID:    issueID,
		assigneeID: assigneeID,
		assignedBy: assignedBy,
		status:     status,
		remarks:    remarks,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Assignment) ID() uint                    { return a.id }
func (a *Assignment) IssueID() uint               { return a.issueID }
func (a *Assignment) AssigneeID() uint            { return a.assigneeID }
func (a *Assignment) AssignedBy() uint            { return a.assignedBy }
func (a *Assignment) Status() vo.AssignmentStatus { return a.status }
func (a *Assignment) Remarks() string             { return a.remarks }
func (a *Assignment) CreatedAt() time.Time        { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time        { return a.updatedAt }

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Assignment) Accept() error {
	if a.status != vo.AssignmentPending {
		return fmt.Errorf("only pending assignments can be accepted")
	}
	a.status = vo.AssignmentAccepted
	a.updatedAt = time.Now()
	return nil
}

// Reject marks the assignment revoked; the reason is appended to the remarks
// so the original assignment note is preserved.
func (a *Assignment) Reject(reason string) error {
	if a.status == vo.AssignmentRejected || a.status == vo.AssignmentCompleted {
		return fmt.Errorf("assignment is already %s", a.status)
	}
	a.status = vo.AssignmentRejected
	if reason != "" {
		if a.remarks != "" {
			a.remarks = a.remarks + "; " + reason
		} else {
			a.remarks = reason
		}
	}
	a.updatedAt = time.Now()
	return nil
}

func (a *Assignment) Complete() error {
	if a.status == vo.AssignmentRejected {
		return fmt.Errorf("rejected assignments cannot be completed")
	}
	a.status = vo.AssignmentCompleted
	a.updatedAt = time.Now()
	return nil
}
