package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, int64, error)
}

// ProjectUserRoleRepository answers the routing queries of the notification
// fan-out engine in addition to plain CRUD on role placements.
type ProjectUserRoleRepository interface {
	Save(ctx context.Context, role *ProjectUserRole) error
	Delete(ctx context.Context, id uint) error
	// GetByProjectAndUser returns the user's placement in the project, or nil
	// when the user holds no role there.
	GetByProjectAndUser(ctx context.Context, projectID, userID uint) (*ProjectUserRole, error)
	// ListActiveUsersAtNode returns placements at the given hierarchy node for
	// the project, restricted to active users.
	ListActiveUsersAtNode(ctx context.Context, projectID, hierarchyNodeID uint) ([]*ProjectUserRole, error)
}

type InternalProjectUserRoleRepository interface {
	Save(ctx context.Context, role *InternalProjectUserRole) error
	Delete(ctx context.Context, id uint) error
	// ListActiveUsersAtNodes returns placements at any of the given internal
	// nodes for the project, restricted to active users.
	ListActiveUsersAtNodes(ctx context.Context, projectID uint, internalNodeIDs []uint) ([]*InternalProjectUserRole, error)
}
