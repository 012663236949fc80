package issue

import (
	"context"

	vo "helpdesk/internal/domain/issue/valueobjects"
)

type IssueFilter struct {
	Status          *vo.IssueStatus
	ProjectID       *uint
	HierarchyNodeID *uint
	ReportedBy      *uint
	AssignedTo      *uint
	PriorityID      *uint
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

type IssueRepository interface {
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	GetByTicketNumber(ctx context.Context, number string) (*Issue, error)
	ExistsByTicketNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context, filter IssueFilter) ([]*Issue, int64, error)
}

type AssignmentRepository interface {
	Save(ctx context.Context, assignment *Assignment) error
	Update(ctx context.Context, assignment *Assignment) error
	GetByID(ctx context.Context, assignmentID uint) (*Assignment, error)
	// GetByIssueAndAssignee returns the newest non-rejected assignment of the
	// user on the issue, or nil when none exists.
	GetByIssueAndAssignee(ctx context.Context, issueID, assigneeID uint) (*Assignment, error)
	ListByIssue(ctx context.Context, issueID uint) ([]*Assignment, error)
}

type EscalationRepository interface {
	Save(ctx context.Context, escalation *Escalation) error
	ListByIssue(ctx context.Context, issueID uint) ([]*Escalation, error)
	// ListCentral returns escalations whose target tier is NULL, i.e. the work
	// queue of the internal support organization. Zero projectID means all
	// projects.
	ListCentral(ctx context.Context, projectID uint) ([]*Escalation, error)
}

type ResolutionRepository interface {
	Save(ctx context.Context, resolution *Resolution) error
	// ListByIssueNewestFirst returns all resolutions for the issue ordered by
	// resolved_at descending; resolver dedup keeps the first occurrence.
	ListByIssueNewestFirst(ctx context.Context, issueID uint) ([]*Resolution, error)
}

type RejectionRepository interface {
	Save(ctx context.Context, rejection *Rejection) error
	ListByIssue(ctx context.Context, issueID uint) ([]*Rejection, error)
}

type ReRaiseRepository interface {
	Save(ctx context.Context, reRaise *ReRaise) error
	ListByIssue(ctx context.Context, issueID uint) ([]*ReRaise, error)
}

// AuditTrailRepository appends the three audit row kinds. Rows are never
// updated or deleted.
type AuditTrailRepository interface {
	AppendAction(ctx context.Context, action *Action) error
	AppendStatusHistory(ctx context.Context, history *StatusHistory) error
	AppendHistory(ctx context.Context, history *History) error
	ListActions(ctx context.Context, issueID uint) ([]*Action, error)
	ListStatusHistory(ctx context.Context, issueID uint) ([]*StatusHistory, error)
	ListHistory(ctx context.Context, issueID uint) ([]*History, error)
}
