package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

// allowedIssueOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedIssueOrderByFields = map[string]bool{
	"id":            true,
	"ticket_number": true,
	"title":         true,
	"status":        true,
	"priority_id":   true,
	"reported_by":   true,
	"assigned_to":   true,
	"created_at":    true,
	"updated_at":    true,
}

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(database *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     database,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket number already exists")
		}
		return fmt.Errorf("failed to save issue: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select("Status", "HierarchyNodeID", "PriorityID", "AssignedTo", "ResolvedAt", "ClosedAt", "Title", "Description", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, issueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) GetByTicketNumber(ctx context.Context, number string) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) ExistsByTicketNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.IssueModel{}).
		Where("ticket_number = ?", number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket number: %w", err)
	}

	return count > 0, nil
}

func (r *IssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.HierarchyNodeID != nil {
		query = query.Where("hierarchy_node_id = ?", *filter.HierarchyNodeID)
	}
	if filter.ReportedBy != nil {
		query = query.Where("reported_by = ?", *filter.ReportedBy)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.PriorityID != nil {
		query = query.Where("priority_id = ?", *filter.PriorityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	query = query.Order(buildIssueOrderClause(filter.SortBy, filter.SortOrder))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var rows []models.IssueModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, 0, len(rows))
	for idx := range rows {
		i, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, 0, err
		}
		issues = append(issues, i)
	}

	return issues, total, nil
}

func buildIssueOrderClause(sortBy, sortOrder string) string {
	field := strings.ToLower(sortBy)
	if !allowedIssueOrderByFields[field] {
		field = "created_at"
	}
	order := strings.ToLower(sortOrder)
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	return fmt.Sprintf("%s %s", field, order)
}
