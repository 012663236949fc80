package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AcceptIssueCommand struct {
	IssueID uint
	ActorID uint
	Notes   string
}

type AcceptIssueResult struct {
	IssueID uint
	Status  string
}

type AcceptIssueUseCase struct {
	issueRepo issue.IssueRepository
	auditRepo issue.AuditTrailRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewAcceptIssueUseCase(
	issueRepo issue.IssueRepository,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AcceptIssueUseCase {
	return &AcceptIssueUseCase{
		issueRepo: issueRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute moves the issue into in_progress and writes the three audit rows.
// The status update and all audit rows commit or roll back together.
func (uc *AcceptIssueUseCase) Execute(ctx context.Context, cmd AcceptIssueCommand) (*AcceptIssueResult, error) {
	uc.logger.Infow("executing accept issue use case", "issue_id", cmd.IssueID, "actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	oldStatus := target.Status()
	if err := target.Accept(cmd.ActorID); err != nil {
		uc.logger.Errorw("cannot accept issue", "issue_id", cmd.IssueID, "status", oldStatus.String(), "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.ActorID, issue.ActionAccepted, cmd.Notes)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		statusHistory := issue.NewStatusHistory(target.ID(), cmd.ActorID, oldStatus, target.Status())
		if err := uc.auditRepo.AppendStatusHistory(txCtx, statusHistory); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.ActorID, issue.ActionAccepted, cmd.Notes)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to accept issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue accepted", "issue_id", target.ID(), "status", target.Status().String())

	return &AcceptIssueResult{IssueID: target.ID(), Status: target.Status().String()}, nil
}

func (uc *AcceptIssueUseCase) validateCommand(cmd AcceptIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	return nil
}
