package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type EscalationRepository struct {
	db     *gorm.DB
	mapper mappers.IssueWorkflowMapper
}

func NewEscalationRepository(database *gorm.DB) *EscalationRepository {
	return &EscalationRepository{
		db:     database,
		mapper: mappers.NewIssueWorkflowMapper(),
	}
}

func (r *EscalationRepository) Save(ctx context.Context, e *issue.Escalation) error {
	model := r.mapper.EscalationToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save escalation: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EscalationRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Escalation, error) {
	var rows []models.IssueEscalationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("escalated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list escalations: %w", err)
	}

	return r.toDomainSlice(rows)
}

// ListCentral returns escalations whose target tier is NULL, i.e. issues
// pushed beyond the external hierarchy into the central support organization.
// Zero projectID returns the queue across all projects.
func (r *EscalationRepository) ListCentral(ctx context.Context, projectID uint) ([]*issue.Escalation, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.IssueEscalationModel{}).
		Where("to_tier IS NULL")

	if projectID != 0 {
		query = query.
			Joins("JOIN issues ON issues.id = issue_escalations.issue_id").
			Where("issues.project_id = ?", projectID)
	}

	var rows []models.IssueEscalationModel
	if err := query.
		Order("issue_escalations.escalated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list central escalations: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *EscalationRepository) toDomainSlice(rows []models.IssueEscalationModel) ([]*issue.Escalation, error) {
	escalations := make([]*issue.Escalation, 0, len(rows))
	for idx := range rows {
		e, err := r.mapper.EscalationToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		escalations = append(escalations, e)
	}
	return escalations, nil
}
