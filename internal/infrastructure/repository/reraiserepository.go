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

type RejectionRepository struct {
	db     *gorm.DB
	mapper mappers.IssueWorkflowMapper
}

func NewRejectionRepository(database *gorm.DB) *RejectionRepository {
	return &RejectionRepository{
		db:     database,
		mapper: mappers.NewIssueWorkflowMapper(),
	}
}

func (r *RejectionRepository) Save(ctx context.Context, rej *issue.Rejection) error {
	model := r.mapper.RejectionToModel(rej)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save rejection: %w", err)
	}

	return rej.SetID(model.ID)
}

func (r *RejectionRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Rejection, error) {
	var rows []models.IssueRejectionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("rejected_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list rejections: %w", err)
	}

	rejections := make([]*issue.Rejection, 0, len(rows))
	for idx := range rows {
		rej, err := r.mapper.RejectionToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		rejections = append(rejections, rej)
	}

	return rejections, nil
}

type ReRaiseRepository struct {
	db     *gorm.DB
	mapper mappers.IssueWorkflowMapper
}

func NewReRaiseRepository(database *gorm.DB) *ReRaiseRepository {
	return &ReRaiseRepository{
		db:     database,
		mapper: mappers.NewIssueWorkflowMapper(),
	}
}

func (r *ReRaiseRepository) Save(ctx context.Context, rr *issue.ReRaise) error {
	model := r.mapper.ReRaiseToModel(rr)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save re-raise: %w", err)
	}

	return rr.SetID(model.ID)
}

func (r *ReRaiseRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.ReRaise, error) {
	var rows []models.IssueReRaiseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("re_raised_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list re-raises: %w", err)
	}

	reRaises := make([]*issue.ReRaise, 0, len(rows))
	for idx := range rows {
		rr, err := r.mapper.ReRaiseToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		reRaises = append(reRaises, rr)
	}

	return reRaises, nil
}
