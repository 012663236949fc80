package mappers

import (
	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// IssueAuditMapper converts the append-only audit rows. Invalid status strings
// in stored history rows are surfaced as errors rather than silently dropped.
type IssueAuditMapper interface {
	ActionToModel(a *issue.Action) *models.IssueActionModel
	ActionToDomain(model *models.IssueActionModel) *issue.Action
	StatusHistoryToModel(h *issue.StatusHistory) *models.IssueStatusHistoryModel
	StatusHistoryToDomain(model *models.IssueStatusHistoryModel) (*issue.StatusHistory, error)
	HistoryToModel(h *issue.History) *models.IssueHistoryModel
	HistoryToDomain(model *models.IssueHistoryModel) *issue.History
}

type IssueAuditMapperImpl struct{}

func NewIssueAuditMapper() IssueAuditMapper {
	return &IssueAuditMapperImpl{}
}

func (m *IssueAuditMapperImpl) ActionToModel(a *issue.Action) *models.IssueActionModel {
	return &models.IssueActionModel{
		ID:        a.ID,
		IssueID:   a.IssueID,
		Actor:     a.Actor,
		Name:      a.Name,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt.UnixMilli(),
	}
}

func (m *IssueAuditMapperImpl) ActionToDomain(model *models.IssueActionModel) *issue.Action {
	return &issue.Action{
		ID:        model.ID,
		IssueID:   model.IssueID,
		Actor:     model.Actor,
		Name:      model.Name,
		Notes:     model.Notes,
		CreatedAt: milliToTime(model.CreatedAt),
	}
}

func (m *IssueAuditMapperImpl) StatusHistoryToModel(h *issue.StatusHistory) *models.IssueStatusHistoryModel {
	return &models.IssueStatusHistoryModel{
		ID:        h.ID,
		IssueID:   h.IssueID,
		Actor:     h.Actor,
		OldStatus: h.OldStatus.String(),
		NewStatus: h.NewStatus.String(),
		CreatedAt: h.CreatedAt.UnixMilli(),
	}
}

func (m *IssueAuditMapperImpl) StatusHistoryToDomain(model *models.IssueStatusHistoryModel) (*issue.StatusHistory, error) {
	oldStatus, err := vo.NewIssueStatus(model.OldStatus)
	if err != nil {
		return nil, err
	}
	newStatus, err := vo.NewIssueStatus(model.NewStatus)
	if err != nil {
		return nil, err
	}

	return &issue.StatusHistory{
		ID:        model.ID,
		IssueID:   model.IssueID,
		Actor:     model.Actor,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		CreatedAt: milliToTime(model.CreatedAt),
	}, nil
}

func (m *IssueAuditMapperImpl) HistoryToModel(h *issue.History) *models.IssueHistoryModel {
	return &models.IssueHistoryModel{
		ID:        h.ID,
		IssueID:   h.IssueID,
		Actor:     h.Actor,
		Event:     h.Event,
		Notes:     h.Notes,
		CreatedAt: h.CreatedAt.UnixMilli(),
	}
}

func (m *IssueAuditMapperImpl) HistoryToDomain(model *models.IssueHistoryModel) *issue.History {
	return &issue.History{
		ID:        model.ID,
		IssueID:   model.IssueID,
		Actor:     model.Actor,
		Event:     model.Event,
		Notes:     model.Notes,
		CreatedAt: milliToTime(model.CreatedAt),
	}
}
