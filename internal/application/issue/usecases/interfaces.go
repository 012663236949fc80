package usecases

import (
	"context"

	"helpdesk/internal/application/notification/fanout"
)

// TransactionManager scopes multi-write operations to one database
// transaction carried through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Executor interfaces decouple HTTP handlers from the concrete use cases.

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type AcceptIssueExecutor interface {
	Execute(ctx context.Context, cmd AcceptIssueCommand) (*AcceptIssueResult, error)
}

type AssignIssueExecutor interface {
	Execute(ctx context.Context, cmd AssignIssueCommand) (*AssignIssueResult, error)
}

type RemoveAssignmentExecutor interface {
	Execute(ctx context.Context, cmd RemoveAssignmentCommand) (*RemoveAssignmentResult, error)
}

type EscalateIssueExecutor interface {
	Execute(ctx context.Context, cmd EscalateIssueCommand) (*EscalateIssueResult, error)
}

type ListCentralEscalationsExecutor interface {
	Execute(ctx context.Context, query ListCentralEscalationsQuery) (*ListCentralEscalationsResult, error)
}

type ResolveIssueExecutor interface {
	Execute(ctx context.Context, cmd ResolveIssueCommand) (*ResolveIssueResult, error)
}

type ConfirmOrRejectExecutor interface {
	Execute(ctx context.Context, cmd ConfirmOrRejectCommand) (*ConfirmOrRejectResult, error)
}

type ReRaiseIssueExecutor interface {
	Execute(ctx context.Context, cmd ReRaiseIssueCommand) (*ReRaiseIssueResult, error)
}

// FanoutNotifier is the slice of the fan-out engine the workflow use cases
// call. All calls happen after the primary transaction committed.
type FanoutNotifier interface {
	SendToImmediateParentHierarchy(ctx context.Context, issueID, senderID uint, nodeID *uint) (*fanout.FanoutResult, error)
	SendToInternalAssignedRootUsers(ctx context.Context, issueID, senderID uint) (*fanout.FanoutResult, error)
	NotifySolverOnConfirmation(ctx context.Context, issueID, confirmerID uint) (*fanout.FanoutResult, error)
	NotifySolverOnReraise(ctx context.Context, issueID, reRaisedBy uint, reason string) (*fanout.FanoutResult, error)
	NotifyIssueCreatorWhenSolved(ctx context.Context, issueID, resolverID uint) (*fanout.FanoutResult, error)
	NotifyUsersOnAssignmentChange(ctx context.Context, issueID, assigneeID, assignerID uint, change fanout.AssignmentChange) (*fanout.FanoutResult, error)
}
