package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListIssuesQuery struct {
	Status          string
	ProjectID       *uint
	HierarchyNodeID *uint
	ReportedBy      *uint
	AssignedTo      *uint
	PriorityID      *uint
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

type ListIssuesResult struct {
	Issues   []IssueDTO `json:"issues"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type ListIssuesUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{issueRepo: issueRepo, logger: logger}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	filter := issue.IssueFilter{
		ProjectID:       query.ProjectID,
		HierarchyNodeID: query.HierarchyNodeID,
		ReportedBy:      query.ReportedBy,
		AssignedTo:      query.AssignedTo,
		PriorityID:      query.PriorityID,
		Page:            query.Page,
		PageSize:        query.PageSize,
		SortBy:          query.SortBy,
		SortOrder:       query.SortOrder,
	}
	if len(query.Status) > 0 {
		status, err := vo.NewIssueStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter: " + query.Status)
		}
		filter.Status = &status
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	dtos := make([]IssueDTO, 0, len(issues))
	for _, i := range issues {
		dtos = append(dtos, toIssueDTO(i))
	}

	return &ListIssuesResult{
		Issues:   dtos,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
