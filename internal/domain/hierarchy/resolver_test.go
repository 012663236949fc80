package hierarchy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	nodes map[uint]*Node
}

func (s *fakeSource) GetByID(ctx context.Context, id uint) (*Node, error) {
	return s.nodes[id], nil
}

func (s *fakeSource) GetChildren(ctx context.Context, parentID uint) ([]*Node, error) {
	var children []*Node
	for _, n := range s.nodes {
		if n.ParentID() != nil && *n.ParentID() == parentID {
			children = append(children, n)
		}
	}
	return children, nil
}

func (s *fakeSource) GetRoots(ctx context.Context) ([]*Node, error) {
	var roots []*Node
	for _, n := range s.nodes {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	return roots, nil
}

func mustNode(t *testing.T, id uint, parentID *uint, level int, name string) *Node {
	t.Helper()
	n, err := ReconstructNode(id, 1, parentID, level, name)
	require.NoError(t, err)
	return n
}

func uintPtr(v uint) *uint {
	return &v
}

// threeLevelSource builds district (1) -> block (2) -> school (3).
func threeLevelSource(t *testing.T) *fakeSource {
	return &fakeSource{nodes: map[uint]*Node{
		1: mustNode(t, 1, nil, 1, "District Office"),
		2: mustNode(t, 2, uintPtr(1), 2, "Block Office"),
		3: mustNode(t, 3, uintPtr(2), 3, "School"),
	}}
}

func TestResolver_Chain(t *testing.T) {
	resolver := NewResolver(threeLevelSource(t))
	ctx := context.Background()

	t.Run("root node yields single element chain", func(t *testing.T) {
		chain, err := resolver.Chain(ctx, 1)
		require.NoError(t, err)
		require.Len(t, chain, 1)
		assert.Equal(t, uint(1), chain[0].ID())
	})

	t.Run("three level node yields root to leaf ordering", func(t *testing.T) {
		chain, err := resolver.Chain(ctx, 3)
		require.NoError(t, err)
		require.Len(t, chain, 3)
		assert.Equal(t, uint(1), chain[0].ID())
		assert.Equal(t, uint(2), chain[1].ID())
		assert.Equal(t, uint(3), chain[2].ID())
	})

	t.Run("unknown node returns not found", func(t *testing.T) {
		_, err := resolver.Chain(ctx, 42)
		assert.ErrorIs(t, err, ErrNodeNotFound)
	})
}

func TestResolver_Chain_CycleDetected(t *testing.T) {
	// 10 -> 11 -> 10: corrupted parent links.
	source := &fakeSource{nodes: map[uint]*Node{
		10: mustNode(t, 10, uintPtr(11), 2, "A"),
		11: mustNode(t, 11, uintPtr(10), 2, "B"),
	}}
	resolver := NewResolverWithDepth(source, 8)

	_, err := resolver.Chain(context.Background(), 10)
	assert.ErrorIs(t, err, ErrCycleDetected)
}

func TestResolver_ImmediateParent(t *testing.T) {
	resolver := NewResolver(threeLevelSource(t))
	ctx := context.Background()

	t.Run("root has no parent", func(t *testing.T) {
		parent, err := resolver.ImmediateParent(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, parent)
	})

	t.Run("leaf resolves its direct parent", func(t *testing.T) {
		parent, err := resolver.ImmediateParent(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, parent)
		assert.Equal(t, uint(2), parent.ID())
	})
}

func TestResolver_Children(t *testing.T) {
	resolver := NewResolver(threeLevelSource(t))
	ctx := context.Background()

	children, err := resolver.Children(ctx, 1)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, uint(2), children[0].ID())

	// Direct children only; grandchildren are not included.
	for _, c := range children {
		assert.NotEqual(t, uint(3), c.ID())
	}
}

func TestResolver_Roots(t *testing.T) {
	resolver := NewResolver(threeLevelSource(t))

	roots, err := resolver.Roots(context.Background())
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].ID())
}

func TestNewNode_Validation(t *testing.T) {
	tests := []struct {
		name     string
		parentID *uint
		level    int
		nodeName string
		wantErr  bool
	}{
		{name: "valid root", parentID: nil, level: 1, nodeName: "Root", wantErr: false},
		{name: "valid child", parentID: uintPtr(1), level: 2, nodeName: "Child", wantErr: false},
		{name: "root with non-root level", parentID: nil, level: 2, nodeName: "Bad", wantErr: true},
		{name: "child with root level", parentID: uintPtr(1), level: 1, nodeName: "Bad", wantErr: true},
		{name: "empty name", parentID: nil, level: 1, nodeName: "", wantErr: true},
		{name: "zero level", parentID: nil, level: 0, nodeName: "Bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNode(1, tt.parentID, tt.level, tt.nodeName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
