package mappers

import (
	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/infrastructure/persistence/models"
)

// HierarchyMapper converts tier nodes for both trees. The internal tree has no
// project scope, so its models carry no ProjectID and map to project zero.
type HierarchyMapper interface {
	NodeToModel(n *hierarchy.Node) *models.HierarchyNodeModel
	NodeToDomain(model *models.HierarchyNodeModel) (*hierarchy.Node, error)
	InternalNodeToModel(n *hierarchy.Node) *models.InternalNodeModel
	InternalNodeToDomain(model *models.InternalNodeModel) (*hierarchy.Node, error)
}

type HierarchyMapperImpl struct{}

func NewHierarchyMapper() HierarchyMapper {
	return &HierarchyMapperImpl{}
}

func (m *HierarchyMapperImpl) NodeToModel(n *hierarchy.Node) *models.HierarchyNodeModel {
	return &models.HierarchyNodeModel{
		ID:        n.ID(),
		ProjectID: n.ProjectID(),
		ParentID:  n.ParentID(),
		Level:     n.Level(),
		Name:      n.Name(),
	}
}

func (m *HierarchyMapperImpl) NodeToDomain(model *models.HierarchyNodeModel) (*hierarchy.Node, error) {
	return hierarchy.ReconstructNode(
		model.ID,
		model.ProjectID,
		model.ParentID,
		model.Level,
		model.Name,
	)
}

func (m *HierarchyMapperImpl) InternalNodeToModel(n *hierarchy.Node) *models.InternalNodeModel {
	return &models.InternalNodeModel{
		ID:       n.ID(),
		ParentID: n.ParentID(),
		Level:    n.Level(),
		Name:     n.Name(),
	}
}

func (m *HierarchyMapperImpl) InternalNodeToDomain(model *models.InternalNodeModel) (*hierarchy.Node, error) {
	return hierarchy.ReconstructNode(
		model.ID,
		0,
		model.ParentID,
		model.Level,
		model.Name,
	)
}
