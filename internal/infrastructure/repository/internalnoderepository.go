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

// InternalNodeRepository persists the global internal-organization tree.
type InternalNodeRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewInternalNodeRepository(database *gorm.DB) *InternalNodeRepository {
	return &InternalNodeRepository{
		db:     database,
		mapper: mappers.NewHierarchyMapper(),
	}
}

func (r *InternalNodeRepository) Save(ctx context.Context, node *hierarchy.Node) error {
	model := r.mapper.InternalNodeToModel(node)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("node name already exists")
		}
		return fmt.Errorf("failed to save internal node: %w", err)
	}

	return node.SetID(model.ID)
}

func (r *InternalNodeRepository) Update(ctx context.Context, node *hierarchy.Node) error {
	model := r.mapper.InternalNodeToModel(node)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InternalNodeModel{}).
		Where("id = ?", model.ID).
		Select("Name", "ParentID", "Level").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update internal node: %w", result.Error)
	}

	return nil
}

func (r *InternalNodeRepository) Delete(ctx context.Context, nodeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.InternalNodeModel{}, nodeID).Error; err != nil {
		return fmt.Errorf("failed to delete internal node: %w", err)
	}

	return nil
}

func (r *InternalNodeRepository) GetByID(ctx context.Context, nodeID uint) (*hierarchy.Node, error) {
	var model models.InternalNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, nodeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, hierarchy.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to find internal node: %w", err)
	}

	return r.mapper.InternalNodeToDomain(&model)
}

func (r *InternalNodeRepository) GetByName(ctx context.Context, name string) (*hierarchy.Node, error) {
	var model models.InternalNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, hierarchy.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to find internal node: %w", err)
	}

	return r.mapper.InternalNodeToDomain(&model)
}

func (r *InternalNodeRepository) GetChildren(ctx context.Context, parentID uint) ([]*hierarchy.Node, error) {
	var rows []models.InternalNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *InternalNodeRepository) GetRoots(ctx context.Context) ([]*hierarchy.Node, error) {
	var rows []models.InternalNodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_id IS NULL").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list root nodes: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *InternalNodeRepository) toDomainSlice(rows []models.InternalNodeModel) ([]*hierarchy.Node, error) {
	nodes := make([]*hierarchy.Node, 0, len(rows))
	for idx := range rows {
		n, err := r.mapper.InternalNodeToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
