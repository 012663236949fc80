package hierarchy

import "fmt"

// Node is a single tier in an organizational tree. The same shape backs both
// the external per-project escalation hierarchy and the global internal
// support-organization tree; ProjectID is zero for internal nodes.
type Node struct {
	id        uint
	projectID uint
	parentID  *uint
	level     int
	name      string
}

func NewNode(projectID uint, parentID *uint, level int, name string) (*Node, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("node name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("node name exceeds maximum length of 200 characters")
	}
	if level < 1 {
		return nil, fmt.Errorf("node level must be at least 1")
	}
	if parentID == nil && level != 1 {
		return nil, fmt.Errorf("root node must have level 1")
	}
	if parentID != nil && level < 2 {
		return nil, fmt.Errorf("child node level must be parent level plus one")
	}

	return &Node{
		projectID: projectID,
		parentID:  parentID,
		level:     level,
		name:      name,
	}, nil
}

func ReconstructNode(id uint, projectID uint, parentID *uint, level int, name string) (*Node, error) {
	if id == 0 {
		return nil, fmt.Errorf("node ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("node name is required")
	}

	return &Node{
		id:        id,
		projectID: projectID,
		parentID:  parentID,
		level:     level,
		name:      name,
	}, nil
}

func (n *Node) ID() uint {
	return n.id
}

func (n *Node) ProjectID() uint {
	return n.projectID
}

func (n *Node) ParentID() *uint {
	return n.parentID
}

func (n *Node) Level() int {
	return n.level
}

func (n *Node) Name() string {
	return n.name
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parentID == nil
}

func (n *Node) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("node ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("node ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Node) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("node name cannot be empty")
	}
	n.name = name
	return nil
}
