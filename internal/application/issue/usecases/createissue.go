package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateIssueCommand struct {
	ProjectID       uint   `json:"project_id" validate:"required"`
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"required,max=5000"`
	PriorityID      uint   `json:"priority_id"`
	ReportedBy      uint   `json:"reported_by" validate:"required"`
	HierarchyNodeID *uint  `json:"hierarchy_node_id"`
}

type CreateIssueResult struct {
	IssueID      uint
	TicketNumber string
	Status       string
	CreatedAt    time.Time
}

type CreateIssueUseCase struct {
	issueRepo issue.IssueRepository
	generator issue.TicketNumberGenerator
	auditRepo issue.AuditTrailRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	generator issue.TicketNumberGenerator,
	auditRepo issue.AuditTrailRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo: issueRepo,
		generator: generator,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "project_id", cmd.ProjectID, "reported_by", cmd.ReportedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create issue command", "error", err)
		return nil, err
	}

	newIssue, err := issue.NewIssue(
		cmd.ProjectID,
		cmd.Title,
		cmd.Description,
		cmd.PriorityID,
		cmd.ReportedBy,
		cmd.HierarchyNodeID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create issue entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.generator.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := newIssue.SetTicketNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return err
		}

		history := issue.NewHistory(newIssue.ID(), cmd.ReportedBy, "created", "issue reported")
		return uc.auditRepo.AppendHistory(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to save issue", "error", err)
		return nil, err
	}

	uc.logger.Infow("issue created successfully", "issue_id", newIssue.ID(), "ticket_number", newIssue.TicketNumber())

	return &CreateIssueResult{
		IssueID:      newIssue.ID(),
		TicketNumber: newIssue.TicketNumber(),
		Status:       newIssue.Status().String(),
		CreatedAt:    newIssue.CreatedAt(),
	}, nil
}

func (uc *CreateIssueUseCase) validateCommand(cmd CreateIssueCommand) error {
	return utils.ValidateStruct(cmd)
}
