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

// AuditTrailRepository persists the append-only audit rows. No update or
// delete methods exist on purpose.
type AuditTrailRepository struct {
	db     *gorm.DB
	mapper mappers.IssueAuditMapper
}

func NewAuditTrailRepository(database *gorm.DB) *AuditTrailRepository {
	return &AuditTrailRepository{
		db:     database,
		mapper: mappers.NewIssueAuditMapper(),
	}
}

func (r *AuditTrailRepository) AppendAction(ctx context.Context, action *issue.Action) error {
	model := r.mapper.ActionToModel(action)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append action: %w", err)
	}

	action.ID = model.ID
	return nil
}

func (r *AuditTrailRepository) AppendStatusHistory(ctx context.Context, history *issue.StatusHistory) error {
	model := r.mapper.StatusHistoryToModel(history)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}

	history.ID = model.ID
	return nil
}

func (r *AuditTrailRepository) AppendHistory(ctx context.Context, history *issue.History) error {
	model := r.mapper.HistoryToModel(history)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	history.ID = model.ID
	return nil
}

func (r *AuditTrailRepository) ListActions(ctx context.Context, issueID uint) ([]*issue.Action, error) {
	var rows []models.IssueActionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	actions := make([]*issue.Action, 0, len(rows))
	for idx := range rows {
		actions = append(actions, r.mapper.ActionToDomain(&rows[idx]))
	}

	return actions, nil
}

func (r *AuditTrailRepository) ListStatusHistory(ctx context.Context, issueID uint) ([]*issue.StatusHistory, error) {
	var rows []models.IssueStatusHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	history := make([]*issue.StatusHistory, 0, len(rows))
	for idx := range rows {
		h, err := r.mapper.StatusHistoryToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	return history, nil
}

func (r *AuditTrailRepository) ListHistory(ctx context.Context, issueID uint) ([]*issue.History, error) {
	var rows []models.IssueHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	history := make([]*issue.History, 0, len(rows))
	for idx := range rows {
		history = append(history, r.mapper.HistoryToDomain(&rows[idx]))
	}

	return history, nil
}
