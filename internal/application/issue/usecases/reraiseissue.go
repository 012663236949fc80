package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ReRaiseIssueCommand struct {
	IssueID    uint
	Reason     string
	ReRaisedBy uint
}

type ReRaiseIssueResult struct {
	ReRaiseID uint
	IssueID   uint
	Status    string
}

type ReRaiseIssueUseCase struct {
	issueRepo   issue.IssueRepository
	reRaiseRepo issue.ReRaiseRepository
	auditRepo   issue.AuditTrailRepository
	txManager   TransactionManager
	notifier    FanoutNotifier
	logger      logger.Interface
}

func NewReRaiseIssueUseCase(
	issueRepo issue.IssueRepository,
	reRaiseRepo issue.ReRaiseRepository,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	notifier FanoutNotifier,
	logger logger.Interface,
) *ReRaiseIssueUseCase {
	return &ReRaiseIssueUseCase{
		issueRepo:   issueRepo,
		reRaiseRepo: reRaiseRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute reopens a resolved or closed issue and starts a new resolution
// cycle. The previous resolvers are notified best-effort after the commit.
func (uc *ReRaiseIssueUseCase) Execute(ctx context.Context, cmd ReRaiseIssueCommand) (*ReRaiseIssueResult, error) {
	uc.logger.Infow("executing re-raise issue use case", "issue_id", cmd.IssueID, "re_raised_by", cmd.ReRaisedBy)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	oldStatus := target.Status()
	if err := target.Reopen(cmd.ReRaisedBy); err != nil {
		uc.logger.Errorw("cannot re-raise issue", "issue_id", cmd.IssueID, "status", oldStatus.String(), "error", err)
		return nil, err
	}

	reRaise, err := issue.NewReRaise(cmd.IssueID, cmd.Reason, cmd.ReRaisedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reRaiseRepo.Save(txCtx, reRaise); err != nil {
			return err
		}
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.ReRaisedBy, issue.ActionReRaised, cmd.Reason)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		statusHistory := issue.NewStatusHistory(target.ID(), cmd.ReRaisedBy, oldStatus, target.Status())
		if err := uc.auditRepo.AppendStatusHistory(txCtx, statusHistory); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.ReRaisedBy, issue.ActionReRaised, cmd.Reason)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to re-raise issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	if _, err := uc.notifier.NotifySolverOnReraise(ctx, target.ID(), cmd.ReRaisedBy, cmd.Reason); err != nil {
		uc.logger.Errorw("re-raise notification failed", "issue_id", target.ID(), "error", err)
	}

	uc.logger.Infow("issue re-raised", "issue_id", target.ID(), "re_raise_id", reRaise.ID())

	return &ReRaiseIssueResult{
		ReRaiseID: reRaise.ID(),
		IssueID:   target.ID(),
		Status:    target.Status().String(),
	}, nil
}

func (uc *ReRaiseIssueUseCase) validateCommand(cmd ReRaiseIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}
	if len(cmd.Reason) == 0 {
		return errors.NewValidationError("re-raise reason is required")
	}
	if cmd.ReRaisedBy == 0 {
		return errors.NewValidationError("re-raising user ID is required")
	}
	return nil
}
