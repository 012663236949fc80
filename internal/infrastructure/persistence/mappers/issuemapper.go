package mappers

import (
	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between Issue domain entities and persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		ID:              i.ID(),
		ProjectID:       i.ProjectID(),
		TicketNumber:    i.TicketNumber(),
		Title:           i.Title(),
		Description:     i.Description(),
		Status:          i.Status().String(),
		HierarchyNodeID: i.HierarchyNodeID(),
		PriorityID:      i.PriorityID(),
		ReportedBy:      i.ReportedBy(),
		AssignedTo:      i.AssignedTo(),
		CreatedAt:       i.CreatedAt().UnixMilli(),
		UpdatedAt:       i.UpdatedAt().UnixMilli(),
		ResolvedAt:      timePtrToMilli(i.ResolvedAt()),
		ClosedAt:        timePtrToMilli(i.ClosedAt()),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	status, err := vo.NewIssueStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return issue.ReconstructIssue(
		model.ID,
		model.ProjectID,
		model.TicketNumber,
		model.Title,
		model.Description,
		status,
		model.HierarchyNodeID,
		model.PriorityID,
		model.ReportedBy,
		model.AssignedTo,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
		milliPtrToTime(model.ResolvedAt),
		milliPtrToTime(model.ClosedAt),
	)
}
