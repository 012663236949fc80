package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

// HierarchyNodeRepository persists the external per-project escalation tree.
type HierarchyNodeRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewHierarchyNodeRepository(database *gorm.DB) *HierarchyNodeRepository {
	return &HierarchyNodeRepository{
		db:     database,
		mapper: mappers.NewHierarchyMapper(),
	}
}

func (r *HierarchyNodeRepository) Save(ctx context.Context, node *hierarchy.Node) error {
	model := r.mapper.NodeToModel(node)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("node name already exists")
		}
		return fmt.Errorf("failed to save hierarchy node: %w", err)
	}

	return node.SetID(model.ID)
}

func (r *HierarchyNodeRepository) Update(ctx context.Context, node *hierarchy.Node) error {
	model := r.mapper.NodeToModel(node)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.HierarchyNodeModel{}).
		Where("id = ?", model.ID).
		Select("Name", "ParentID", "Level").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update hierarchy node: %w", result.Error)
	}

	return nil
}

func (r *HierarchyNodeRepository) Delete(ctx context.Context, nodeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.HierarchyNodeModel{}, nodeID).Error; err != nil {
		return fmt.Errorf("failed to delete hierarchy node: %w", err)
	}

	return nil
}

func (r *HierarchyNodeRepository) GetByID(ctx context.Context, nodeID uint) (*hierarchy.Node, error) {
	var model models.HierarchyNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, nodeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, hierarchy.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to find hierarchy node: %w", err)
	}

	return r.mapper.NodeToDomain(&model)
}

func (r *HierarchyNodeRepository) GetByName(ctx context.Context, name string) (*hierarchy.Node, error) {
	var model models.HierarchyNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, hierarchy.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to find hierarchy node: %w", err)
	}

	return r.mapper.NodeToDomain(&model)
}

func (r *HierarchyNodeRepository) GetChildren(ctx context.Context, parentID uint) ([]*hierarchy.Node, error) {
	var rows []models.HierarchyNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *HierarchyNodeRepository) GetRootsByProject(ctx context.Context, projectID uint) ([]*hierarchy.Node, error) {
	var rows []models.HierarchyNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ? AND parent_id IS NULL", projectID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list root nodes: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *HierarchyNodeRepository) ListByProject(ctx context.Context, projectID uint) ([]*hierarchy.Node, error) {
	var rows []models.HierarchyNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("level ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *HierarchyNodeRepository) toDomainSlice(rows []models.HierarchyNodeModel) ([]*hierarchy.Node, error) {
	nodes := make([]*hierarchy.Node, 0, len(rows))
	for idx := range rows {
		n, err := r.mapper.NodeToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
