package hierarchy

import (
	"context"
	"errors"
	"fmt"
)

// ErrCycleDetected is returned when a parent walk exceeds the depth bound,
// which can only happen if the stored tree contains a cycle.
var ErrCycleDetected = errors.New("hierarchy chain exceeds maximum depth")

// ErrNodeNotFound is returned when a referenced node does not exist.
var ErrNodeNotFound = errors.New("hierarchy node not found")

// DefaultMaxDepth bounds parent-chain walks. Real trees are a handful of
// levels deep; anything past this is treated as a cycle.
const DefaultMaxDepth = 32

// NodeSource is the read capability the resolver walks over. It is backed by
// either the external per-project hierarchy table or the global internal
// organization table.
type NodeSource interface {
	GetByID(ctx context.Context, id uint) (*Node, error)
	GetChildren(ctx context.Context, parentID uint) ([]*Node, error)
	GetRoots(ctx context.Context) ([]*Node, error)
}

// Resolver walks one organizational tree. The same walker serves both trees;
// only the backing NodeSource differs.
type Resolver struct {
	source   NodeSource
	maxDepth int
}

func NewResolver(source NodeSource) *Resolver {
	return &Resolver{
		source:   source,
		maxDepth: DefaultMaxDepth,
	}
}

// NewResolverWithDepth creates a resolver with a custom depth bound.
func NewResolverWithDepth(source NodeSource, maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{
		source:   source,
		maxDepth: maxDepth,
	}
}

// Node returns the node with the given id.
func (r *Resolver) Node(ctx context.Context, nodeID uint) (*Node, error) {
	node, err := r.source.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("node %d: %w", nodeID, ErrNodeNotFound)
	}
	return node, nil
}

// ImmediateParent returns the direct parent of the node, or nil when the node
// is a root. A root is not an error; top-of-hierarchy fan-outs use the nil
// result as their zero-recipient signal.
func (r *Resolver) ImmediateParent(ctx context.Context, nodeID uint) (*Node, error) {
	node, err := r.Node(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if node.IsRoot() {
		return nil, nil
	}
	return r.Node(ctx, *node.ParentID())
}

// Chain returns the ordered path [root ... node] by following parent links.
// The walk fails with ErrCycleDetected when it exceeds the depth bound.
func (r *Resolver) Chain(ctx context.Context, nodeID uint) ([]*Node, error) {
	node, err := r.Node(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	chain := []*Node{node}
	for !node.IsRoot() {
		if len(chain) >= r.maxDepth {
			return nil, ErrCycleDetected
		}
		node, err = r.Node(ctx, *node.ParentID())
		if err != nil {
			return nil, err
		}
		chain = append(chain, node)
	}

	// Reverse in place so the root comes first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Roots returns every node with no parent.
func (r *Resolver) Roots(ctx context.Context) ([]*Node, error) {
	return r.source.GetRoots(ctx)
}

// Children returns the direct children of the node, one level only.
func (r *Resolver) Children(ctx context.Context, nodeID uint) ([]*Node, error) {
	if _, err := r.Node(ctx, nodeID); err != nil {
		return nil, err
	}
	return r.source.GetChildren(ctx, nodeID)
}
