package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ConfirmOrRejectCommand struct {
	IssueID     uint
	ActorID     uint
	IsConfirmed bool
	Reason      string // required on the reject branch
}

type ConfirmOrRejectResult struct {
	IssueID   uint
	Status    string
	Confirmed bool
}

// ConfirmOrRejectUseCase handles the issue creator's verdict on a proposed
// resolution: confirmation closes the issue, rejection reopens it. Either
// branch notifies the resolvers with the outcome after the commit.
type ConfirmOrRejectUseCase struct {
	issueRepo     issue.IssueRepository
	rejectionRepo issue.RejectionRepository
	auditRepo     issue.AuditTrailRepository
	txManager     TransactionManager
	notifier      FanoutNotifier
	logger        logger.Interface
}

func NewConfirmOrRejectUseCase(
	issueRepo issue.IssueRepository,
	rejectionRepo issue.RejectionRepository,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	notifier FanoutNotifier,
	logger logger.Interface,
) *ConfirmOrRejectUseCase {
	return &ConfirmOrRejectUseCase{
		issueRepo:     issueRepo,
		rejectionRepo: rejectionRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *ConfirmOrRejectUseCase) Execute(ctx context.Context, cmd ConfirmOrRejectCommand) (*ConfirmOrRejectResult, error) {
	uc.logger.Infow("executing confirm or reject use case", "issue_id", cmd.IssueID, "confirmed", cmd.IsConfirmed)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	if cmd.IsConfirmed {
		return uc.confirm(ctx, target, cmd)
	}
	return uc.reject(ctx, target, cmd)
}

func (uc *ConfirmOrRejectUseCase) confirm(ctx context.Context, target *issue.Issue, cmd ConfirmOrRejectCommand) (*ConfirmOrRejectResult, error) {
	oldStatus := target.Status()
	if err := target.ConfirmClosed(cmd.ActorID); err != nil {
		uc.logger.Errorw("cannot close issue", "issue_id", target.ID(), "status", oldStatus.String(), "error", err)
		return nil, err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.ActorID, issue.ActionClosed, cmd.Reason)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		statusHistory := issue.NewStatusHistory(target.ID(), cmd.ActorID, oldStatus, target.Status())
		if err := uc.auditRepo.AppendStatusHistory(txCtx, statusHistory); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.ActorID, issue.ActionClosed, cmd.Reason)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to close issue", "issue_id", target.ID(), "error", err)
		return nil, err
	}

	// The issue stays closed even when the notification fails.
	if _, err := uc.notifier.NotifySolverOnConfirmation(ctx, target.ID(), cmd.ActorID); err != nil {
		uc.logger.Errorw("confirmation notification failed", "issue_id", target.ID(), "error", err)
	}

	uc.logger.Infow("issue closed on confirmation", "issue_id", target.ID())

	return &ConfirmOrRejectResult{IssueID: target.ID(), Status: target.Status().String(), Confirmed: true}, nil
}

func (uc *ConfirmOrRejectUseCase) reject(ctx context.Context, target *issue.Issue, cmd ConfirmOrRejectCommand) (*ConfirmOrRejectResult, error) {
	oldStatus := target.Status()
	if err := target.Reopen(cmd.ActorID); err != nil {
		uc.logger.Errorw("cannot reopen issue", "issue_id", target.ID(), "status", oldStatus.String(), "error", err)
		return nil, err
	}

	rejection, err := issue.NewRejection(target.ID(), cmd.Reason, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.rejectionRepo.Save(txCtx, rejection); err != nil {
			return err
		}
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.ActorID, issue.ActionRejected, cmd.Reason)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		statusHistory := issue.NewStatusHistory(target.ID(), cmd.ActorID, oldStatus, target.Status())
		if err := uc.auditRepo.AppendStatusHistory(txCtx, statusHistory); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.ActorID, issue.ActionRejected, cmd.Reason)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to reject resolution", "issue_id", target.ID(), "error", err)
		return nil, err
	}

	if _, err := uc.notifier.NotifySolverOnReraise(ctx, target.ID(), cmd.ActorID, cmd.Reason); err != nil {
		uc.logger.Errorw("rejection notification failed", "issue_id", target.ID(), "error", err)
	}

	uc.logger.Infow("resolution rejected, issue reopened", "issue_id", target.ID())

	return &ConfirmOrRejectResult{IssueID: target.ID(), Status: target.Status().String(), Confirmed: false}, nil
}

func (uc *ConfirmOrRejectUseCase) validateCommand(cmd ConfirmOrRejectCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if !cmd.IsConfirmed && len(cmd.Reason) == 0 {
		return errors.NewValidationError("rejection reason is required")
	}
	return nil
}
