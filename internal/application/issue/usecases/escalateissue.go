package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type EscalateIssueCommand struct {
	IssueID     uint
	FromTier    uint
	ToTier      *uint // nil escalates to the central support organization
	Reason      string
	EscalatedBy uint
}

type EscalateIssueResult struct {
	EscalationID uint
	IssueID      uint
	ToTier       *uint
	Central      bool
}

type EscalateIssueUseCase struct {
	issueRepo      issue.IssueRepository
	escalationRepo issue.EscalationRepository
	auditRepo      issue.AuditTrailRepository
	txManager      TransactionManager
	notifier       FanoutNotifier
	logger         logger.Interface
}

func NewEscalateIssueUseCase(
	issueRepo issue.IssueRepository,
	escalationRepo issue.EscalationRepository,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	notifier FanoutNotifier,
	logger logger.Interface,
) *EscalateIssueUseCase {
	return &EscalateIssueUseCase{
		issueRepo:      issueRepo,
		escalationRepo: escalationRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

// Execute records the escalation and, for tier-to-tier moves, relocates the
// issue to the target node. A nil target tier leaves hierarchy_node_id alone
// and puts the row on the central work queue.
func (uc *EscalateIssueUseCase) Execute(ctx context.Context, cmd EscalateIssueCommand) (*EscalateIssueResult, error) {
	uc.logger.Infow("executing escalate issue use case", "issue_id", cmd.IssueID, "from_tier", cmd.FromTier, "central", cmd.ToTier == nil)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	target, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	escalation, err := issue.NewEscalation(cmd.IssueID, cmd.FromTier, cmd.ToTier, cmd.Reason, cmd.EscalatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ToTier != nil {
		target.MoveToTier(cmd.ToTier)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.escalationRepo.Save(txCtx, escalation); err != nil {
			return err
		}
		if err := uc.issueRepo.Update(txCtx, target); err != nil {
			return err
		}
		action := issue.NewAction(target.ID(), cmd.EscalatedBy, issue.ActionEscalated, cmd.Reason)
		if err := uc.auditRepo.AppendAction(txCtx, action); err != nil {
			return err
		}
		history := issue.NewHistory(target.ID(), cmd.EscalatedBy, issue.ActionEscalated, cmd.Reason)
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to escalate issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	// Post-commit fan-out: tier moves notify the parent tier, central
	// escalations notify the internal root users. Failure is logged only.
	if escalation.IsCentral() {
		if _, err := uc.notifier.SendToInternalAssignedRootUsers(ctx, target.ID(), cmd.EscalatedBy); err != nil {
			uc.logger.Errorw("central escalation notification failed", "issue_id", target.ID(), "error", err)
		}
	} else {
		fromTier := cmd.FromTier
		if _, err := uc.notifier.SendToImmediateParentHierarchy(ctx, target.ID(), cmd.EscalatedBy, &fromTier); err != nil {
			uc.logger.Errorw("escalation notification failed", "issue_id", target.ID(), "error", err)
		}
	}

	uc.logger.Infow("issue escalated", "issue_id", target.ID(), "escalation_id", escalation.ID(), "central", escalation.IsCentral())

	return &EscalateIssueResult{
		EscalationID: escalation.ID(),
		IssueID:      target.ID(),
		ToTier:       escalation.ToTier(),
		Central:      escalation.IsCentral(),
	}, nil
}

func (uc *EscalateIssueUseCase) validateCommand(cmd EscalateIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}
	if cmd.FromTier == 0 {
		return errors.NewValidationError("source tier is required")
	}
	if cmd.ToTier != nil && *cmd.ToTier == 0 {
		return errors.NewValidationError("target tier cannot be zero; omit it for central escalation")
	}
	if len(cmd.Reason) == 0 {
		return errors.NewValidationError("escalation reason is required")
	}
	if cmd.EscalatedBy == 0 {
		return errors.NewValidationError("escalator ID is required")
	}
	return nil
}
