package user

import "fmt"

// ProjectUserRole places a user at one tier of a project's external hierarchy
// with a role. It doubles as the routing table for notification fan-out:
// "who sits at node N for project P".
type ProjectUserRole struct {
	ID              uint
	ProjectID       uint
	UserID          uint
	RoleID          uint
	HierarchyNodeID uint
}

// InternalProjectUserRole is the internal-organization counterpart, placing a
// user at an internal node for a project.
type InternalProjectUserRole struct {
	ID             uint
	ProjectID      uint
	UserID         uint
	RoleID         uint
	InternalNodeID uint
}

func (r *ProjectUserRole) Validate() error {
	if r.ProjectID == 0 || r.UserID == 0 || r.RoleID == 0 || r.HierarchyNodeID == 0 {
		return fmt.Errorf("project, user, role and hierarchy node are all required")
	}
	return nil
}

func (r *InternalProjectUserRole) Validate() error {
	if r.ProjectID == 0 || r.UserID == 0 || r.RoleID == 0 || r.InternalNodeID == 0 {
		return fmt.Errorf("project, user, role and internal node are all required")
	}
	return nil
}
