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

type ResolutionRepository struct {
	db     *gorm.DB
	mapper mappers.IssueWorkflowMapper
}

func NewResolutionRepository(database *gorm.DB) *ResolutionRepository {
	return &ResolutionRepository{
		db:     database,
		mapper: mappers.NewIssueWorkflowMapper(),
	}
}

func (r *ResolutionRepository) Save(ctx context.Context, res *issue.Resolution) error {
	model := r.mapper.ResolutionToModel(res)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save resolution: %w", err)
	}

	return res.SetID(model.ID)
}

// ListByIssueNewestFirst returns every resolution attempt for the issue,
// newest first. Callers deduplicating resolvers keep the first occurrence.
func (r *ResolutionRepository) ListByIssueNewestFirst(ctx context.Context, issueID uint) ([]*issue.Resolution, error) {
	var rows []models.IssueResolutionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("resolved_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list resolutions: %w", err)
	}

	resolutions := make([]*issue.Resolution, 0, len(rows))
	for idx := range rows {
		res, err := r.mapper.ResolutionToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, res)
	}

	return resolutions, nil
}
