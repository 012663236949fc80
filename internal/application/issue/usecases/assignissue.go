package usecases

import (
	"context"

	"helpdesk/internal/application/notification/fanout"
	"helpdesk/internal/domain/issue"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignIssueCommand struct {
	IssueID    uint
	AssigneeID uint
	AssignedBy uint
	Remarks    string
}

type AssignIssueResult struct {
	AssignmentID uint
	IssueID      uint
	AssigneeID   uint
}

type AssignIssueUseCase struct {
	issueRepo      issue.IssueRepository
	assignmentRepo issue.AssignmentRepository
	auditRepo      issue.AuditTrailRepository
	userRepo       user.UserRepository
	txManager      TransactionManager
	notifier       FanoutNotifier
	logger         logger.Interface
}

func NewAssignIssueUseCase(
	issueRepo issue.IssueRepository,
	assignmentRepo issue.AssignmentRepository,
	auditRepo issue.AuditTrailRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	notifier FanoutNotifier,
	logger logger.Interface,
) *AssignIssueUseCase {
	return &AssignIssueUseCase{
		issueRepo:      issueRepo,
		assignmentRepo: assignmentRepo,
		auditRepo:      auditRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *AssignIssueUseCase) Execute(ctx context.Context, cmd AssignIssueCommand) (*AssignIssueResult, error) {
	uc.logger.Infow("executing assign issue use case", "issue_id", cmd.IssueID, "assignee_id", cmd.AssigneeID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID); err != nil {
		uc.logger.Errorw("assignee not found", "assignee_id", cmd.AssigneeID, "error", err)
		return nil, err
	}

	existing, err := uc.assignmentRepo.GetByIssueAndAssignee(ctx, cmd.IssueID, cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("user is already assigned to this issue")
	}

	assignment, err := issue.NewAssignment(cmd.IssueID, cmd.AssigneeID, cmd.AssignedBy, cmd.Remarks)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := target.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.Save(txCtx, assignment); err != nil {
			return err
		}
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.AssignedBy, issue.ActionAssigned, cmd.Remarks)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.AssignedBy, issue.ActionAssigned, cmd.Remarks)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	// Post-commit notification; failure never undoes the assignment.
	if _, err := uc.notifier.NotifyUsersOnAssignmentChange(ctx, target.ID(), cmd.AssigneeID, cmd.AssignedBy, fanout.ChangeAssigned); err != nil {
		uc.logger.Errorw("assignment notification failed", "issue_id", target.ID(), "error", err)
	}

	uc.logger.Infow("issue assigned", "issue_id", target.ID(), "assignment_id", assignment.ID(), "assignee_id", cmd.AssigneeID)

	return &AssignIssueResult{
		AssignmentID: assignment.ID(),
		IssueID:      target.ID(),
		AssigneeID:   cmd.AssigneeID,
	}, nil
}

func (uc *AssignIssueUseCase) validateCommand(cmd AssignIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	if cmd.AssignedBy == 0 {
		return errors.NewValidationError("assigner ID is required")
	}
	return nil
}
