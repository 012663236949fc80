package mappers

import (
	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// IssueWorkflowMapper converts the workflow audit records (assignments,
// escalations, resolutions, rejections, re-raises) between domain and
// persistence representations.
type IssueWorkflowMapper interface {
	AssignmentToModel(a *issue.Assignment) *models.IssueAssignmentModel
	AssignmentToDomain(model *models.IssueAssignmentModel) (*issue.Assignment, error)
	EscalationToModel(e *issue.Escalation) *models.IssueEscalationModel
	EscalationToDomain(model *models.IssueEscalationModel) (*issue.Escalation, error)
	ResolutionToModel(r *issue.Resolution) *models.IssueResolutionModel
	ResolutionToDomain(model *models.IssueResolutionModel) (*issue.Resolution, error)
	RejectionToModel(r *issue.Rejection) *models.IssueRejectionModel
	RejectionToDomain(model *models.IssueRejectionModel) (*issue.Rejection, error)
	ReRaiseToModel(r *issue.ReRaise) *models.IssueReRaiseModel
	ReRaiseToDomain(model *models.IssueReRaiseModel) (*issue.ReRaise, error)
}

type IssueWorkflowMapperImpl struct{}

func NewIssueWorkflowMapper() IssueWorkflowMapper {
	return &IssueWorkflowMapperImpl{}
}

func (m *IssueWorkflowMapperImpl) AssignmentToModel(a *issue.Assignment) *models.IssueAssignmentModel {
	return &models.IssueAssignmentModel{
		ID:         a.ID(),
		IssueID:    a.IssueID(),
		AssigneeID: a.AssigneeID(),
		AssignedBy: a.AssignedBy(),
		Status:     a.Status().String(),
		Remarks:    a.Remarks(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
		UpdatedAt:  a.UpdatedAt().UnixMilli(),
	}
}

func (m *IssueWorkflowMapperImpl) AssignmentToDomain(model *models.IssueAssignmentModel) (*issue.Assignment, error) {
	status, err := vo.NewAssignmentStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return issue.ReconstructAssignment(
		model.ID,
		model.IssueID,
		model.AssigneeID,
		model.AssignedBy,
		status,
		model.Remarks,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}

func (m *IssueWorkflowMapperImpl) EscalationToModel(e *issue.Escalation) *models.IssueEscalationModel {
	return &models.IssueEscalationModel{
		ID:          e.ID(),
		IssueID:     e.IssueID(),
		FromTier:    e.FromTier(),
		ToTier:      e.ToTier(),
		Reason:      e.Reason(),
		EscalatedBy: e.EscalatedBy(),
		EscalatedAt: e.EscalatedAt().UnixMilli(),
	}
}

func (m *IssueWorkflowMapperImpl) EscalationToDomain(model *models.IssueEscalationModel) (*issue.Escalation, error) {
	return issue.ReconstructEscalation(
		model.ID,
		model.IssueID,
		model.FromTier,
		model.ToTier,
		model.Reason,
		model.EscalatedBy,
		milliToTime(model.EscalatedAt),
	)
}

func (m *IssueWorkflowMapperImpl) ResolutionToModel(r *issue.Resolution) *models.IssueResolutionModel {
	return &models.IssueResolutionModel{
		ID:         r.ID(),
		IssueID:    r.IssueID(),
		Reason:     r.Reason(),
		ResolvedBy: r.ResolvedBy(),
		ResolvedAt: r.ResolvedAt().UnixMilli(),
	}
}

func (m *IssueWorkflowMapperImpl) ResolutionToDomain(model *models.IssueResolutionModel) (*issue.Resolution, error) {
	return issue.ReconstructResolution(
		model.ID,
		model.IssueID,
		model.Reason,
		model.ResolvedBy,
		milliToTime(model.ResolvedAt),
	)
}

func (m *IssueWorkflowMapperImpl) RejectionToModel(r *issue.Rejection) *models.IssueRejectionModel {
	return &models.IssueRejectionModel{
		ID:         r.ID(),
		IssueID:    r.IssueID(),
		Reason:     r.Reason(),
		RejectedBy: r.RejectedBy(),
		RejectedAt: r.RejectedAt().UnixMilli(),
	}
}

func (m *IssueWorkflowMapperImpl) RejectionToDomain(model *models.IssueRejectionModel) (*issue.Rejection, error) {
	return issue.ReconstructRejection(
		model.ID,
		model.IssueID,
		model.Reason,
		model.RejectedBy,
		milliToTime(model.RejectedAt),
	)
}

func (m *IssueWorkflowMapperImpl) ReRaiseToModel(r *issue.ReRaise) *models.IssueReRaiseModel {
	return &models.IssueReRaiseModel{
		ID:         r.ID(),
		IssueID:    r.IssueID(),
		Reason:     r.Reason(),
		ReRaisedBy: r.ReRaisedBy(),
		ReRaisedAt: r.ReRaisedAt().UnixMilli(),
	}
}

func (m *IssueWorkflowMapperImpl) ReRaiseToDomain(model *models.IssueReRaiseModel) (*issue.ReRaise, error) {
	return issue.ReconstructReRaise(
		model.ID,
		model.IssueID,
		model.Reason,
		model.ReRaisedBy,
		milliToTime(model.ReRaisedAt),
	)
}
