package hierarchy

import "context"

// HierarchyNodeRepository persists the external per-project escalation tree.
type HierarchyNodeRepository interface {
	Save(ctx context.Context, node *Node) error
	Update(ctx context.Context, node *Node) error
	Delete(ctx context.Context, nodeID uint) error
	GetByID(ctx context.Context, nodeID uint) (*Node, error)
	GetByName(ctx context.Context, name string) (*Node, error)
	GetChildren(ctx context.Context, parentID uint) ([]*Node, error)
	GetRootsByProject(ctx context.Context, projectID uint) ([]*Node, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Node, error)
}

// InternalNodeRepository persists the global internal-organization tree.
type InternalNodeRepository interface {
	Save(ctx context.Context, node *Node) error
	Update(ctx context.Context, node *Node) error
	Delete(ctx context.Context, nodeID uint) error
	GetByID(ctx context.Context, nodeID uint) (*Node, error)
	GetByName(ctx context.Context, name string) (*Node, error)
	GetChildren(ctx context.Context, parentID uint) ([]*Node, error)
	GetRoots(ctx context.Context) ([]*Node, error)
}

// externalSource binds the per-project repository to one project so it can
// serve as a NodeSource for the generic resolver.
type externalSource struct {
	repo      HierarchyNodeRepository
	projectID uint
}

// ExternalSource adapts the external hierarchy repository for the resolver,
// scoped to a single project's forest.
func ExternalSource(repo HierarchyNodeRepository, projectID uint) NodeSource {
	return &externalSource{repo: repo, projectID: projectID}
}

func (s *externalSource) GetByID(ctx context.Context, id uint) (*Node, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *externalSource) GetChildren(ctx context.Context, parentID uint) ([]*Node, error) {
	return s.repo.GetChildren(ctx, parentID)
}

func (s *externalSource) GetRoots(ctx context.Context) ([]*Node, error) {
	return s.repo.GetRootsByProject(ctx, s.projectID)
}

// internalSource adapts the internal-organization repository for the resolver.
type internalSource struct {
	repo InternalNodeRepository
}

// InternalSource adapts the internal node repository for the resolver.
func InternalSource(repo InternalNodeRepository) NodeSource {
	return &internalSource{repo: repo}
}

func (s *internalSource) GetByID(ctx context.Context, id uint) (*Node, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *internalSource) GetChildren(ctx context.Context, parentID uint) ([]*Node, error) {
	return s.repo.GetChildren(ctx, parentID)
}

func (s *internalSource) GetRoots(ctx context.Context) ([]*Node, error) {
	return s.repo.GetRoots(ctx)
}
