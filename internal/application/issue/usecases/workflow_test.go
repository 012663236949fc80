package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/notification/fanout"
	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

func testUser(id uint) *user.User {
	u, err := user.ReconstructUser(
		id,
		"Test User",
		"user@example.com",
		"$2a$12$hash",
		user.StatusActive,
		time.Now(),
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return u
}

func testIssue(id uint, status vo.IssueStatus) *issue.Issue {
	nodeID := uint(3)
	i, err := issue.ReconstructIssue(
		id,
		1,
		"TICK-26-A1B2C3",
		"Printer offline",
		"The third-floor printer refuses all jobs.",
		status,
		&nodeID,
		1,
		42,
		nil,
		time.Now(),
		time.Now(),
		nil,
		nil,
	)
	if err != nil {
		panic(err)
	}
	return i
}

func TestCreateIssue_SavesIssueWithGeneratedNumber(t *testing.T) {
	issues := &mockIssueRepository{}
	audits := &mockAuditRepository{}
	var saved *issue.Issue
	issues.SaveFunc = func(ctx context.Context, i *issue.Issue) error {
		saved = i
		return i.SetID(9)
	}

	uc := NewCreateIssueUseCase(issues, &mockTicketNumberGenerator{}, audits, &mockTransactionManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateIssueCommand{
		ProjectID:   1,
		Title:       "Printer offline",
		Description: "The third-floor printer refuses all jobs.",
		PriorityID:  1,
		ReportedBy:  42,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), result.IssueID)
	assert.Equal(t, "TICK-26-ABCDEF", result.TicketNumber)
	assert.Equal(t, vo.StatusPending.String(), result.Status)
	require.NotNil(t, saved)
	assert.Equal(t, "TICK-26-ABCDEF", saved.TicketNumber())
	require.Len(t, audits.Histories, 1)
	assert.Equal(t, "created", audits.Histories[0].Event)
}

func TestCreateIssue_RejectsMissingTitle(t *testing.T) {
	uc := NewCreateIssueUseCase(&mockIssueRepository{}, &mockTicketNumberGenerator{}, &mockAuditRepository{}, &mockTransactionManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateIssueCommand{
		ProjectID:   1,
		Description: "desc",
		PriorityID:  1,
		ReportedBy:  42,
	})

	assert.Error(t, err)
}

func TestAcceptIssue_WritesStatusAndAuditRowsTogether(t *testing.T) {
	issues := &mockIssueRepository{}
	audits := &mockAuditRepository{}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusPending), nil
	}

	uc := NewAcceptIssueUseCase(issues, audits, &mockTransactionManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AcceptIssueCommand{IssueID: 1, ActorID: 7})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress.String(), result.Status)
	require.Len(t, audits.Actions, 1)
	assert.Equal(t, issue.ActionAccepted, audits.Actions[0].Name)
	require.Len(t, audits.StatusHistories, 1)
	assert.Equal(t, vo.StatusPending, audits.StatusHistories[0].OldStatus)
	assert.Equal(t, vo.StatusInProgress, audits.StatusHistories[0].NewStatus)
	require.Len(t, audits.Histories, 1)
}

func TestAcceptIssue_AuditFailureRollsBackTransaction(t *testing.T) {
	issues := &mockIssueRepository{}
	audits := &mockAuditRepository{}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusPending), nil
	}
	audits.AppendStatusHistoryFunc = func(ctx context.Context, h *issue.StatusHistory) error {
		return fmt.Errorf("status history insert failed")
	}

	var committed bool
	tx := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			if err := fn(ctx); err != nil {
				return err
			}
			committed = true
			return nil
		},
	}

	uc := NewAcceptIssueUseCase(issues, audits, tx, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AcceptIssueCommand{IssueID: 1, ActorID: 7})

	require.Error(t, err)
	assert.False(t, committed, "transaction must not commit when an audit write fails")
}

func TestAcceptIssue_ClosedIssueCannotBeAccepted(t *testing.T) {
	issues := &mockIssueRepository{}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusClosed), nil
	}

	uc := NewAcceptIssueUseCase(issues, &mockAuditRepository{}, &mockTransactionManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AcceptIssueCommand{IssueID: 1, ActorID: 7})

	assert.Error(t, err)
}

func TestAssignIssue_RecordsPendingAssignmentAndNotifiesAssignee(t *testing.T) {
	issues := &mockIssueRepository{}
	assignments := &mockAssignmentRepository{}
	notifier := &mockFanoutNotifier{}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusInProgress), nil
	}
	var updated *issue.Issue
	issues.UpdateFunc = func(ctx context.Context, i *issue.Issue) error {
		updated = i
		return nil
	}
	var savedAssignment *issue.Assignment
	assignments.SaveFunc = func(ctx context.Context, a *issue.Assignment) error {
		savedAssignment = a
		return a.SetID(5)
	}

	uc := NewAssignIssueUseCase(issues, assignments, &mockAuditRepository{}, &mockUserRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AssignIssueCommand{IssueID: 1, AssigneeID: 10, AssignedBy: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.AssignmentID)
	require.NotNil(t, savedAssignment)
	assert.Equal(t, vo.AssignmentPending, savedAssignment.Status())
	require.NotNil(t, updated)
	require.NotNil(t, updated.AssignedTo())
	assert.Equal(t, uint(10), *updated.AssignedTo())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, fanout.ChangeAssigned, notifier.Calls[0].Change)
}

func TestAssignIssue_RejectsDuplicateActiveAssignment(t *testing.T) {
	issues := &mockIssueRepository{}
	assignments := &mockAssignmentRepository{}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusInProgress), nil
	}
	assignments.GetByIssueAndAssigneeFunc = func(ctx context.Context, issueID, assigneeID uint) (*issue.Assignment, error) {
		existing, _ := issue.NewAssignment(issueID, assigneeID, 7, "")
		return existing, nil
	}

	uc := NewAssignIssueUseCase(issues, assignments, &mockAuditRepository{}, &mockUserRepository{}, &mockTransactionManager{}, &mockFanoutNotifier{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AssignIssueCommand{IssueID: 1, AssigneeID: 10, AssignedBy: 7})

	assert.Error(t, err)
}

func TestRemoveAssignment_LocatesByIssueAndAssignee(t *testing.T) {
	issues := &mockIssueRepository{}
	assignments := &mockAssignmentRepository{}
	notifier := &mockFanoutNotifier{}

	target := testIssue(1, vo.StatusInProgress)
	require.NoError(t, target.AssignTo(10))
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}
	assignments.GetByIssueAndAssigneeFunc = func(ctx context.Context, issueID, assigneeID uint) (*issue.Assignment, error) {
		a, err := issue.NewAssignment(issueID, assigneeID, 7, "take this one")
		if err != nil {
			return nil, err
		}
		if err := a.SetID(5); err != nil {
			return nil, err
		}
		return a, nil
	}
	var rejected *issue.Assignment
	assignments.UpdateFunc = func(ctx context.Context, a *issue.Assignment) error {
		rejected = a
		return nil
	}

	uc := NewRemoveAssignmentUseCase(issues, assignments, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RemoveAssignmentCommand{IssueID: 1, AssigneeID: 10, RemovedBy: 7, Reason: "reassigned elsewhere"})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.AssignmentID)
	require.NotNil(t, rejected)
	assert.Equal(t, vo.AssignmentRejected, rejected.Status())
	assert.Nil(t, target.AssignedTo())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, fanout.ChangeUnassigned, notifier.Calls[0].Change)
	assert.Equal(t, uint(10), notifier.Calls[0].UserID)
	assert.Equal(t, uint(7), notifier.Calls[0].OtherID)
}

func TestRemoveAssignment_NotifiesOriginalAssignerNotRemover(t *testing.T) {
	issues := &mockIssueRepository{}
	assignments := &mockAssignmentRepository{}
	notifier := &mockFanoutNotifier{}

	target := testIssue(1, vo.StatusInProgress)
	require.NoError(t, target.AssignTo(10))
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}
	assignments.GetByIssueAndAssigneeFunc = func(ctx context.Context, issueID, assigneeID uint) (*issue.Assignment, error) {
		a, err := issue.NewAssignment(issueID, assigneeID, 7, "take this one")
		if err != nil {
			return nil, err
		}
		if err := a.SetID(5); err != nil {
			return nil, err
		}
		return a, nil
	}

	uc := NewRemoveAssignmentUseCase(issues, assignments, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RemoveAssignmentCommand{IssueID: 1, AssigneeID: 10, RemovedBy: 9, Reason: "workload rebalancing"})

	require.NoError(t, err)
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, uint(10), notifier.Calls[0].UserID)
	assert.Equal(t, uint(7), notifier.Calls[0].OtherID, "assigner notification goes to whoever made the assignment")
}

func TestEscalateIssue_TierMoveRelocatesIssueAndNotifiesParent(t *testing.T) {
	issues := &mockIssueRepository{}
	escalations := &mockEscalationRepository{}
	notifier := &mockFanoutNotifier{}
	target := testIssue(1, vo.StatusInProgress)
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}

	uc := NewEscalateIssueUseCase(issues, escalations, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	toTier := uint(5)
	result, err := uc.Execute(context.Background(), EscalateIssueCommand{
		IssueID:     1,
		FromTier:    3,
		ToTier:      &toTier,
		Reason:      "needs second-tier attention",
		EscalatedBy: 7,
	})

	require.NoError(t, err)
	assert.False(t, result.Central)
	require.NotNil(t, target.HierarchyNodeID())
	assert.Equal(t, uint(5), *target.HierarchyNodeID())
	require.Len(t, escalations.Saved, 1)
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, "SendToImmediateParentHierarchy", notifier.Calls[0].Method)
	require.NotNil(t, notifier.Calls[0].NodeID)
	assert.Equal(t, uint(3), *notifier.Calls[0].NodeID)
}

func TestEscalateIssue_CentralEscalationKeepsNodeAndNotifiesInternalRoots(t *testing.T) {
	issues := &mockIssueRepository{}
	escalations := &mockEscalationRepository{}
	notifier := &mockFanoutNotifier{}
	target := testIssue(1, vo.StatusInProgress)
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}

	uc := NewEscalateIssueUseCase(issues, escalations, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), EscalateIssueCommand{
		IssueID:     1,
		FromTier:    3,
		Reason:      "exhausted the external hierarchy",
		EscalatedBy: 7,
	})

	require.NoError(t, err)
	assert.True(t, result.Central)
	require.NotNil(t, target.HierarchyNodeID())
	assert.Equal(t, uint(3), *target.HierarchyNodeID())
	require.Len(t, escalations.Saved, 1)
	assert.Nil(t, escalations.Saved[0].ToTier())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, "SendToInternalAssignedRootUsers", notifier.Calls[0].Method)
}

func TestResolveIssue_SetsResolvedAndNotifiesCreator(t *testing.T) {
	issues := &mockIssueRepository{}
	resolutions := &mockResolutionRepository{}
	notifier := &mockFanoutNotifier{}
	target := testIssue(1, vo.StatusInProgress)
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}

	uc := NewResolveIssueUseCase(issues, resolutions, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ResolveIssueCommand{IssueID: 1, Reason: "replaced the fuser", ResolvedBy: 7})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved.String(), result.Status)
	assert.NotNil(t, target.ResolvedAt())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, "NotifyIssueCreatorWhenSolved", notifier.Calls[0].Method)
}

func TestResolveIssue_NotificationFailureDoesNotFailResolution(t *testing.T) {
	issues := &mockIssueRepository{}
	notifier := &mockFanoutNotifier{Err: fmt.Errorf("smtp down")}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusInProgress), nil
	}

	uc := NewResolveIssueUseCase(issues, &mockResolutionRepository{}, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ResolveIssueCommand{IssueID: 1, Reason: "replaced the fuser", ResolvedBy: 7})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved.String(), result.Status)
}

func TestConfirmOrReject_ConfirmationClosesEvenWhenNotificationFails(t *testing.T) {
	issues := &mockIssueRepository{}
	notifier := &mockFanoutNotifier{Err: fmt.Errorf("fan-out unavailable")}
	target := testIssue(1, vo.StatusResolved)
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}

	uc := NewConfirmOrRejectUseCase(issues, &mockRejectionRepository{}, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ConfirmOrRejectCommand{IssueID: 1, ActorID: 42, IsConfirmed: true})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed.String(), result.Status)
	assert.NotNil(t, target.ClosedAt())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, "NotifySolverOnConfirmation", notifier.Calls[0].Method)
}

func TestConfirmOrReject_RejectionReopensAndRecordsReason(t *testing.T) {
	issues := &mockIssueRepository{}
	rejections := &mockRejectionRepository{}
	notifier := &mockFanoutNotifier{}
	target := testIssue(1, vo.StatusResolved)
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}
	var savedRejection *issue.Rejection
	rejections.SaveFunc = func(ctx context.Context, r *issue.Rejection) error {
		savedRejection = r
		return r.SetID(1)
	}

	uc := NewConfirmOrRejectUseCase(issues, rejections, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ConfirmOrRejectCommand{IssueID: 1, ActorID: 42, IsConfirmed: false, Reason: "printer still jams"})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusReopened.String(), result.Status)
	require.NotNil(t, savedRejection)
	assert.Equal(t, "printer still jams", savedRejection.Reason())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, "NotifySolverOnReraise", notifier.Calls[0].Method)
	assert.Equal(t, "printer still jams", notifier.Calls[0].Reason)
}

func TestConfirmOrReject_RejectionRequiresReason(t *testing.T) {
	uc := NewConfirmOrRejectUseCase(&mockIssueRepository{}, &mockRejectionRepository{}, &mockAuditRepository{}, &mockTransactionManager{}, &mockFanoutNotifier{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ConfirmOrRejectCommand{IssueID: 1, ActorID: 42, IsConfirmed: false})

	assert.Error(t, err)
}

func TestReRaiseIssue_ReopensClosedIssueAndNotifiesSolvers(t *testing.T) {
	issues := &mockIssueRepository{}
	reRaises := &mockReRaiseRepository{}
	notifier := &mockFanoutNotifier{}
	target := testIssue(1, vo.StatusClosed)
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return target, nil
	}

	uc := NewReRaiseIssueUseCase(issues, reRaises, &mockAuditRepository{}, &mockTransactionManager{}, notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ReRaiseIssueCommand{IssueID: 1, Reason: "problem came back", ReRaisedBy: 42})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusReopened.String(), result.Status)
	assert.Nil(t, target.ClosedAt())
	require.Len(t, notifier.Calls, 1)
	assert.Equal(t, "NotifySolverOnReraise", notifier.Calls[0].Method)
	assert.Equal(t, "problem came back", notifier.Calls[0].Reason)
}

func TestReRaiseIssue_PendingIssueCannotBeReRaised(t *testing.T) {
	issues := &mockIssueRepository{}
	issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, vo.StatusPending), nil
	}

	uc := NewReRaiseIssueUseCase(issues, &mockReRaiseRepository{}, &mockAuditRepository{}, &mockTransactionManager{}, &mockFanoutNotifier{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ReRaiseIssueCommand{IssueID: 1, Reason: "problem came back", ReRaisedBy: 42})

	assert.Error(t, err)
}
