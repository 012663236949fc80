package issue

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/shared/errors"
)

// Issue is the aggregate at the center of the helpdesk workflow. Its status
// moves only through the lifecycle methods below; audit rows (actions, status
// history, escalations, resolutions) are separate append-only records kept
// loosely coupled to the status field.
type Issue struct {
	id              uint
	projectID       uint
	ticketNumber    string
	title           string
	description     string
	status          vo.IssueStatus
	hierarchyNodeID *uint
	priorityID      uint
	reportedBy      uint
	assignedTo      *uint
	createdAt       time.Time
	updatedAt       time.Time
	resolvedAt      *time.Time
	closedAt        *time.Time
}

func NewIssue(
	projectID uint,
	title string,
	description string,
	priorityID uint,
	reportedBy uint,
	hierarchyNodeID *uint,
) (*Issue, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if reportedBy == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	now := time.Now()
	return &Issue{
		projectID:       projectID,
		title:           title,
		description:     description,
		status:          vo.StatusPending,
		hierarchyNodeID: hierarchyNodeID,
		priorityID:      priorityID,
		reportedBy:      reportedBy,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructIssue(
	id uint,
	projectID uint,
	ticketNumber string,
	title string,
	description string,
	status vo.IssueStatus,
	hierarchyNodeID *uint,
	priorityID uint,
	reportedBy uint,
	assignedTo *uint,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(ticketNumber) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid issue status: %s", status)
	}

	return &Issue{
		id:              id,
		projectID:       projectID,
		ticketNumber:    ticketNumber,
		title:           title,
		description:     description,
		status:          status,
		hierarchyNodeID: hierarchyNodeID,
		priorityID:      priorityID,
		reportedBy:      reportedBy,
		assignedTo:      assignedTo,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		resolvedAt:      resolvedAt,
		closedAt:        closedAt,
	}, nil
}

func (i *Issue) ID() uint                { return i.id }
func (i *Issue) ProjectID() uint         { return i.projectID }
func (i *Issue) TicketNumber() string    { return i.ticketNumber }
func (i *Issue) Title() string           { return i.title }
func (i *Issue) Description() string     { return i.description }
func (i *Issue) Status() vo.IssueStatus  { return i.status }
func (i *Issue) HierarchyNodeID() *uint  { return i.hierarchyNodeID }
func (i *Issue) PriorityID() uint        { return i.priorityID }
func (i *Issue) ReportedBy() uint        { return i.reportedBy }
func (i *Issue) AssignedTo() *uint       { return i.assignedTo }
func (i *Issue) CreatedAt() time.Time    { return i.createdAt }
func (i *Issue) UpdatedAt() time.Time    { return i.updatedAt }
func (i *Issue) ResolvedAt() *time.Time  { return i.resolvedAt }
func (i *Issue) ClosedAt() *time.Time    { return i.closedAt }

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// SetTicketNumber fixes the ticket number once; it is immutable afterwards.
func (i *Issue) SetTicketNumber(number string) error {
	if len(i.ticketNumber) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	i.ticketNumber = number
	return nil
}

// Accept moves the issue into in_progress. Only pending and reopened issues
// can be accepted; repeating the edge is an invalid transition.
func (i *Issue) Accept(actor uint) error {
	if actor == 0 {
		return fmt.Errorf("actor ID is required")
	}
	if !i.status.CanTransitionTo(vo.StatusInProgress) {
		return errors.NewInvalidTransitionError(i.status.String(), vo.StatusInProgress.String())
	}

	i.status = vo.StatusInProgress
	i.updatedAt = time.Now()
	return nil
}

// MarkResolved records a resolution outcome on the issue itself. The
// IssueResolution audit row is written by the workflow, not here.
func (i *Issue) MarkResolved(actor uint) error {
	if actor == 0 {
		return fmt.Errorf("actor ID is required")
	}
	if !i.status.CanTransitionTo(vo.StatusResolved) {
		return errors.NewInvalidTransitionError(i.status.String(), vo.StatusResolved.String())
	}

	now := time.Now()
	i.status = vo.StatusResolved
	i.resolvedAt = &now
	i.updatedAt = now
	return nil
}

// ConfirmClosed closes the issue after the creator confirms the resolution.
func (i *Issue) ConfirmClosed(actor uint) error {
	if actor == 0 {
		return fmt.Errorf("actor ID is required")
	}
	if !i.status.CanTransitionTo(vo.StatusClosed) {
		return errors.NewInvalidTransitionError(i.status.String(), vo.StatusClosed.String())
	}

	now := time.Now()
	i.status = vo.StatusClosed
	i.closedAt = &now
	i.updatedAt = now
	return nil
}

// Reopen moves a resolved or closed issue back into the active cycle.
func (i *Issue) Reopen(actor uint) error {
	if actor == 0 {
		return fmt.Errorf("actor ID is required")
	}
	if !i.status.CanTransitionTo(vo.StatusReopened) {
		return errors.NewInvalidTransitionError(i.status.String(), vo.StatusReopened.String())
	}

	i.status = vo.StatusReopened
	i.resolvedAt = nil
	i.closedAt = nil
	i.updatedAt = time.Now()
	return nil
}

// AssignTo points the issue at its current assignee. The assignment audit
// trail allows multiple concurrent rows; this field tracks only the latest.
func (i *Issue) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	i.assignedTo = &assigneeID
	i.updatedAt = time.Now()
	return nil
}

// ClearAssignee drops the current-assignee pointer.
func (i *Issue) ClearAssignee() {
	i.assignedTo = nil
	i.updatedAt = time.Now()
}

// MoveToTier relocates the issue in the external hierarchy. A nil tier means
// the issue has been escalated out of the hierarchy to the central support
// organization.
func (i *Issue) MoveToTier(nodeID *uint) {
	i.hierarchyNodeID = nodeID
	i.updatedAt = time.Now()
}
