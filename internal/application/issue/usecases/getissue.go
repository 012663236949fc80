package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID      uint
	TicketNumber string
}

type GetIssueUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewGetIssueUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{issueRepo: issueRepo, logger: logger}
}

// Execute looks an issue up by ID or, when the ID is zero, by ticket number.
func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*IssueDTO, error) {
	if query.IssueID == 0 && len(query.TicketNumber) == 0 {
		return nil, errors.NewValidationError("issue ID or ticket number is required")
	}

	var (
		found *issue.Issue
		err   error
	)
	if query.IssueID != 0 {
		found, err = uc.issueRepo.GetByID(ctx, query.IssueID)
	} else {
		found, err = uc.issueRepo.GetByTicketNumber(ctx, query.TicketNumber)
	}
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", query.IssueID, "ticket_number", query.TicketNumber, "error", err)
		return nil, err
	}

	dto := toIssueDTO(found)
	return &dto, nil
}
