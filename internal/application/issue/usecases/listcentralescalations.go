package usecases

import (
	"context"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/shared/logger"
)

type ListCentralEscalationsQuery struct {
	ProjectID uint // zero means all projects
}

type ListCentralEscalationsResult struct {
	Escalations []EscalationDTO `json:"escalations"`
	Total       int             `json:"total"`
}

// ListCentralEscalationsUseCase serves the work queue of the internal
// support organization: escalations whose target tier is NULL.
type ListCentralEscalationsUseCase struct {
	escalationRepo issue.EscalationRepository
	logger         logger.Interface
}

func NewListCentralEscalationsUseCase(escalationRepo issue.EscalationRepository, logger logger.Interface) *ListCentralEscalationsUseCase {
	return &ListCentralEscalationsUseCase{escalationRepo: escalationRepo, logger: logger}
}

func (uc *ListCentralEscalationsUseCase) Execute(ctx context.Context, query ListCentralEscalationsQuery) (*ListCentralEscalationsResult, error) {
	escalations, err := uc.escalationRepo.ListCentral(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list central escalations", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	dtos := make([]EscalationDTO, 0, len(escalations))
	for _, e := range escalations {
		dtos = append(dtos, toEscalationDTO(e))
	}

	return &ListCentralEscalationsResult{Escalations: dtos, Total: len(dtos)}, nil
}
