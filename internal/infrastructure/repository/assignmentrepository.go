package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.IssueWorkflowMapper
}

func NewAssignmentRepository(database *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     database,
		mapper: mappers.NewIssueWorkflowMapper(),
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, a *issue.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssignmentRepository) Update(ctx context.Context, a *issue.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueAssignmentModel{}).
		Where("id = ?", model.ID).
		Select("Status", "Remarks", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}

	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, assignmentID uint) (*issue.Assignment, error) {
	var model models.IssueAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, assignmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

// GetByIssueAndAssignee returns the newest non-rejected assignment of the user
// on the issue, or nil when no such row exists.
func (r *AssignmentRepository) GetByIssueAndAssignee(ctx context.Context, issueID, assigneeID uint) (*issue.Assignment, error) {
	var model models.IssueAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("issue_id = ? AND assignee_id = ? AND status <> ?", issueID, assigneeID, vo.AssignmentRejected.String()).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

func (r *AssignmentRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Assignment, error) {
	var rows []models.IssueAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*issue.Assignment, 0, len(rows))
	for idx := range rows {
		a, err := r.mapper.AssignmentToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
