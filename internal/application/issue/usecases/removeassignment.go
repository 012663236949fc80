package usecases

import (
	"context"

	"helpdesk/internal/application/notification/fanout"
	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RemoveAssignmentCommand struct {
	AssignmentID uint // zero means locate by IssueID + AssigneeID
	IssueID      uint
	AssigneeID   uint
	RemovedBy    uint
	Reason       string
}

type RemoveAssignmentResult struct {
	AssignmentID uint
	IssueID      uint
	AssigneeID   uint
}

type RemoveAssignmentUseCase struct {
	issueRepo      issue.IssueRepository
	assignmentRepo issue.AssignmentRepository
	auditRepo      issue.AuditTrailRepository
	txManager      TransactionManager
	notifier       FanoutNotifier
	logger         logger.Interface
}

func NewRemoveAssignmentUseCase(
	issueRepo issue.IssueRepository,
	assignmentRepo issue.AssignmentRepository,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	notifier FanoutNotifier,
	logger logger.Interface,
) *RemoveAssignmentUseCase {
	return &RemoveAssignmentUseCase{
		issueRepo:      issueRepo,
		assignmentRepo: assignmentRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *RemoveAssignmentUseCase) Execute(ctx context.Context, cmd RemoveAssignmentCommand) (*RemoveAssignmentResult, error) {
	uc.logger.Infow("executing remove assignment use case", "assignment_id", cmd.AssignmentID, "issue_id", cmd.IssueID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	assignment, err := uc.locateAssignment(ctx, cmd)
	if err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, assignment.IssueID())
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", assignment.IssueID(), "error", err)
		return nil, err
	}

	if err := assignment.Reject(cmd.Reason); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	// Clear the current-assignee pointer only when it still points at the
	// removed user; a later assignment may have replaced it.
	if target.AssignedTo() != nil && *target.AssignedTo() == assignment.AssigneeID() {
		target.ClearAssignee()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.Update(txCtx, assignment); err != nil {
			return err
		}
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.RemovedBy, issue.ActionUnassigned, cmd.Reason)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.RemovedBy, issue.ActionUnassigned, cmd.Reason)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to remove assignment", "assignment_id", assignment.ID(), "error", err)
		return nil, err
	}

	// The unassignment fan-out targets the former assignee and the user who
	// originally made the assignment, not whoever performed the removal.
	if _, err := uc.notifier.NotifyUsersOnAssignmentChange(ctx, target.ID(), assignment.AssigneeID(), assignment.AssignedBy(), fanout.ChangeUnassigned); err != nil {
		uc.logger.Errorw("unassignment notification failed", "issue_id", target.ID(), "error", err)
	}

	uc.logger.Infow("assignment removed", "assignment_id", assignment.ID(), "issue_id", target.ID())

	return &RemoveAssignmentResult{
		AssignmentID: assignment.ID(),
		IssueID:      target.ID(),
		AssigneeID:   assignment.AssigneeID(),
	}, nil
}

func (uc *RemoveAssignmentUseCase) locateAssignment(ctx context.Context, cmd RemoveAssignmentCommand) (*issue.Assignment, error) {
	if cmd.AssignmentID != 0 {
		return uc.assignmentRepo.GetByID(ctx, cmd.AssignmentID)
	}

	assignment, err := uc.assignmentRepo.GetByIssueAndAssignee(ctx, cmd.IssueID, cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errors.NewNotFoundError("no active assignment for this user on the issue")
	}
	return assignment, nil
}

func (uc *RemoveAssignmentUseCase) validateCommand(cmd RemoveAssignmentCommand) error {
	if cmd.AssignmentID == 0 && (cmd.IssueID == 0 || cmd.AssigneeID == 0) {
		return errors.NewValidationError("assignment ID or issue ID with assignee ID is required")
	}
	if cmd.RemovedBy == 0 {
		return errors.NewValidationError("remover ID is required")
	}
	return nil
}
