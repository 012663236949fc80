package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ResolveIssueCommand struct {
	IssueID    uint
	Reason     string
	ResolvedBy uint
}

type ResolveIssueResult struct {
	ResolutionID uint
	IssueID      uint
	Status       string
}

type ResolveIssueUseCase struct {
	issueRepo      issue.IssueRepository
	resolutionRepo issue.ResolutionRepository
	auditRepo      issue.AuditTrailRepository
	txManager      TransactionManager
	notifier       FanoutNotifier
	logger         logger.Interface
}

func NewResolveIssueUseCase(
	issueRepo issue.IssueRepository,
	resolutionRepo issue.ResolutionRepository,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	notifier FanoutNotifier,
	logger logger.Interface,
) *ResolveIssueUseCase {
	return &ResolveIssueUseCase{
		issueRepo:      issueRepo,
		resolutionRepo: resolutionRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *ResolveIssueUseCase) Execute(ctx context.Context, cmd ResolveIssueCommand) (*ResolveIssueResult, error) {
	uc.logger.Infow("executing resolve issue use case", "issue_id", cmd.IssueID, "resolved_by", cmd.ResolvedBy)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	oldStatus := target.Status()
	if err := target.MarkResolved(cmd.ResolvedBy); err != nil {
		uc.logger.Errorw("cannot resolve issue", "issue_id", cmd.IssueID, "status", oldStatus.String(), "error", err)
		return nil, err
	}

	resolution, err := issue.NewResolution(cmd.IssueID, cmd.Reason, cmd.ResolvedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.resolutionRepo.Save(txCtx, resolution); err != nil {
			return err
		}
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.ResolvedBy, issue.ActionResolved, cmd.Reason)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		statusHistory := issue.NewStatusHistory(target.ID(), cmd.ResolvedBy, oldStatus, target.Status())
		if err := uc.auditRepo.AppendStatusHistory(txCtx, statusHistory); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.ResolvedBy, issue.ActionResolved, cmd.Reason)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	// Best-effort creator notification after the commit.
	if _, err := uc.notifier.NotifyIssueCreatorWhenSolved(ctx, target.ID(), cmd.ResolvedBy); err != nil {
		uc.logger.Errorw("resolution notification failed", "issue_id", target.ID(), "error", err)
	}

	uc.logger.Infow("issue resolved", "issue_id", target.ID(), "resolution_id", resolution.ID())

	return &ResolveIssueResult{
		ResolutionID: resolution.ID(),
		IssueID:      target.ID(),
		Status:       target.Status().String(),
	}, nil
}

func (uc *ResolveIssueUseCase) validateCommand(cmd ResolveIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}
	if len(cmd.Reason) == 0 {
		return errors.NewValidationError("resolution reason is required")
	}
	if cmd.ResolvedBy == 0 {
		return errors.NewValidationError("resolver ID is required")
	}
	return nil
}
