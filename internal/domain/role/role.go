package role

import (
	"context"
	"fmt"
	"time"
)

// Role is a named permission bundle. Enforcement happens through the casbin
// policy; these rows are the source the policy is synced from.
type Role struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission is one (resource, action) pair grantable to a role.
type Permission struct {
	ID       uint
	Resource string
	Action   string
}

func (r *Role) Validate() error {
	if len(r.Name) == 0 {
		return fmt.Errorf("role name is required")
	}
	if len(r.Slug) == 0 {
		return fmt.Errorf("role slug is required")
	}
	return nil
}

func (p *Permission) Validate() error {
	if len(p.Resource) == 0 || len(p.Action) == 0 {
		return fmt.Errorf("permission resource and action are required")
	}
	return nil
}

type RoleRepository interface {
	Save(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetBySlug(ctx context.Context, slug string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	// ListPermissions returns the permissions granted to the role.
	ListPermissions(ctx context.Context, roleID uint) ([]*Permission, error)
	GrantPermission(ctx context.Context, roleID, permissionID uint) error
	RevokePermission(ctx context.Context, roleID, permissionID uint) error
}
